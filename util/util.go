package util

// ======================================================================

// 比較結果を示す型
type Ordering interface {
	orderProtexted()
}

type order int

func (o order) orderProtexted() {}

const (
	Less    order = -1
	Equal   order = 0
	Greater order = 1
)

// int64同士の三方比較
func CompareInt64(a, b int64) Ordering {
	if a < b {
		return Less
	}
	if a > b {
		return Greater
	}
	return Equal
}
