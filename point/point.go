package point

import "github.com/yuya-isaka/chibialgo/arith"

// 2次元の格子点
// 小さい構造体なのでポインタではなく値で渡す
type Point struct {
	X int64
	Y int64
}

// マンハッタン距離
func Manhattan(p, q Point) int64 {
	return arith.Abs(p.X-q.X) + arith.Abs(p.Y-q.Y)
}
