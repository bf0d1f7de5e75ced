package logging

import (
	"bytes"
	"fmt"
	"time"
)

// Entry 一条日志记录
type Entry struct {
	Time     time.Time
	Level    LogLevel
	Category string
	Message  string
	Fields   []Field
}

const timestampFormat = "2006-01-02 15:04:05"

// formatText 把日志条目格式化成单行文本。
func formatText(entry *Entry) []byte {
	var buffer bytes.Buffer

	buffer.WriteString(entry.Time.Format(timestampFormat))
	buffer.WriteByte(' ')
	buffer.WriteString(entry.Level.String())

	if entry.Category != "" {
		buffer.WriteString(" [")
		buffer.WriteString(entry.Category)
		buffer.WriteString("]")
	}

	buffer.WriteByte(' ')
	buffer.WriteString(entry.Message)

	if len(entry.Fields) > 0 {
		buffer.WriteString(" {")
		for i, field := range entry.Fields {
			if i > 0 {
				buffer.WriteString(", ")
			}
			buffer.WriteString(field.Key)
			buffer.WriteString("=")
			fmt.Fprintf(&buffer, "%v", field.Value)
		}
		buffer.WriteString("}")
	}

	buffer.WriteByte('\n')
	return buffer.Bytes()
}
