package point_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yuya-isaka/chibialgo/point"
)

func TestManhattan(t *testing.T) {
	tests := []struct {
		name     string
		p, q     point.Point
		expected int64
	}{
		{"Standard", point.Point{X: 0, Y: 0}, point.Point{X: 3, Y: 4}, 7},
		{"Same", point.Point{X: 5, Y: 5}, point.Point{X: 5, Y: 5}, 0},
		{"Negative", point.Point{X: -2, Y: -3}, point.Point{X: 1, Y: 1}, 7},
		{"Symmetric", point.Point{X: 3, Y: 4}, point.Point{X: 0, Y: 0}, 7},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, point.Manhattan(test.p, test.q))
		})
	}
}
