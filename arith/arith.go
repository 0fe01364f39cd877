package arith

import "errors"

// ゼロ除算エラー
var ErrZeroDivisor = errors.New("divisor is zero")

// ======================================================================

func Add(a, b int64) int64 {
	return a + b
}

// 絶対値
func Abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// 商と余りをまとめて返す
// ポインタ経由の出力引数ではなく、多値返却を使う
func DivMod(dividend, divisor int64) (int64, int64, error) {
	if divisor == 0 {
		return 0, 0, ErrZeroDivisor
	}
	return dividend / divisor, dividend % divisor, nil
}

// 2値の入れ替え
// ポインタ経由ではなく、多値返却を使う
func Swap(a, b int64) (int64, int64) {
	return b, a
}
