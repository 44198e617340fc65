package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout 线上日期格式
const DateLayout = "2006-01-02"

// Date 日期字段(fecha_compra、fecha_ingreso等)
// 输出YYYY-MM-DD;输入同时接受YYYY-MM-DD和RFC3339
type Date struct {
	time.Time
}

// NewDate 由time.Time构造
func NewDate(t time.Time) Date {
	return Date{Time: t}
}

// MarshalJSON 零值输出null
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("fecha inválida: %w", err)
	}
	t, err := ParseDate(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// ParseDate 解析YYYY-MM-DD或RFC3339
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha inválida %q: se espera YYYY-MM-DD", s)
	}
	return t, nil
}

// datePtr 可空日期的转换
func datePtr(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	d := NewDate(*t)
	return &d
}

// timePtr 请求中可空日期转为领域层的*time.Time
func timePtr(d *Date) *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}
