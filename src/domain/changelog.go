package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxChangelogEntries is the cap per item; the oldest entries are dropped first.
const MaxChangelogEntries = 50

// EmptyValueLabel is the rendering of empty or null values in a change label.
const EmptyValueLabel = "(空)"

// ChangeEntry represents one tracked-field value transition on a todo
type ChangeEntry struct {
	Time  string `json:"time"`
	Field string `json:"field"`
	From  any    `json:"from"`
	To    any    `json:"to"`
	Label string `json:"label"`
}

// 变更日志里展示的字段名
var changeFieldNames = map[string]string{
	"tab":       "时间段",
	"quadrant":  "象限",
	"progress":  "进度",
	"completed": "状态",
	"assignee":  "相关人",
	"due_date":  "计划完成",
	"tags":      "标签",
}

var tabValueLabels = map[string]string{
	"today": "Today",
	"week":  "This Week",
	"month": "Next 30 Days",
}

var quadrantValueLabels = map[string]string{
	"important-urgent":         "🔥优先处理",
	"important-not-urgent":     "🎯就等你翻牌子了",
	"not-important-urgent":     "📥待分类",
	"not-important-not-urgent": "⚡短平快",
}

// ChangeFieldName returns the display name of a tracked field,
// falling back to the raw field name.
func ChangeFieldName(field string) string {
	if name, ok := changeFieldNames[field]; ok {
		return name
	}
	return field
}

// FormatChangeValue renders a field value for a change label.
// Unknown enum values render as their raw string form.
func FormatChangeValue(field string, val any) string {
	switch v := val.(type) {
	case nil:
		return EmptyValueLabel
	case string:
		return formatChangeString(field, v)
	case Tab:
		return formatChangeString(field, string(v))
	case Quadrant:
		return formatChangeString(field, string(v))
	case bool:
		if field == "completed" {
			if v {
				return "已完成"
			}
			return "未完成"
		}
		return strconv.FormatBool(v)
	case []string:
		if len(v) == 0 {
			return EmptyValueLabel
		}
		return strings.Join(v, ", ")
	default:
		if field == "progress" {
			return fmt.Sprintf("%v%%", v)
		}
		return fmt.Sprintf("%v", v)
	}
}

func formatChangeString(field, val string) string {
	if val == "" {
		return EmptyValueLabel
	}
	switch field {
	case "tab":
		if label, ok := tabValueLabels[val]; ok {
			return label
		}
	case "quadrant":
		if label, ok := quadrantValueLabels[val]; ok {
			return label
		}
	}
	return val
}

// RecordChange appends one change entry with a pre-rendered label and
// enforces the changelog cap.
func (t *Todo) RecordChange(field string, from, to any, now string) {
	label := fmt.Sprintf("%s: %s → %s",
		ChangeFieldName(field),
		FormatChangeValue(field, from),
		FormatChangeValue(field, to))

	t.Changelog = append(t.Changelog, ChangeEntry{
		Time:  now,
		Field: field,
		From:  from,
		To:    to,
		Label: label,
	})

	if len(t.Changelog) > MaxChangelogEntries {
		t.Changelog = t.Changelog[len(t.Changelog)-MaxChangelogEntries:]
	}
}
