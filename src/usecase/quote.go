package usecase

import (
	"math/rand"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// 名言文件缺失或为空时的内置回退列表
var defaultQuotes = []string{
	"Focus on the right thing.",
	"专注于重要的事情。",
	"Done is better than perfect.",
	"先完成，再完美。",
}

// QuoteUsecase defines the interface for the quote provider
type QuoteUsecase interface {
	RandomQuote() string
}

type quoteUsecase struct {
	path   string
	logger *logrus.Logger
}

// NewQuoteUsecase creates a quote provider backed by a newline-delimited file
func NewQuoteUsecase(path string, logger *logrus.Logger) QuoteUsecase {
	return &quoteUsecase{
		path:   path,
		logger: logger,
	}
}

// RandomQuote picks a uniformly random non-empty line from the quotes file,
// falling back to the built-in list when the file is missing, empty, or
// unreadable. Read-only; no side effects.
func (u *quoteUsecase) RandomQuote() string {
	quotes := u.readQuotes()
	if len(quotes) == 0 {
		quotes = defaultQuotes
	}
	return quotes[rand.Intn(len(quotes))]
}

func (u *quoteUsecase) readQuotes() []string {
	data, err := os.ReadFile(u.path)
	if err != nil {
		if !os.IsNotExist(err) {
			u.logger.WithError(err).WithField("file", u.path).Warn("名言文件读取失败，使用内置名言")
		}
		return nil
	}

	var quotes []string
	for _, line := range strings.Split(string(data), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			quotes = append(quotes, trimmed)
		}
	}
	return quotes
}
