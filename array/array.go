package array

import (
	"errors"
	"fmt"
)

// 範囲外アクセスエラー
// 隣接メモリを黙って壊す代わりに、明示的なエラーで失敗させる
var ErrOutOfRange = errors.New("index out of range")

// 空の列エラー
var ErrEmpty = errors.New("sequence is empty")

// ======================================================================

// 全要素の合計
func Sum(seq []int64) int64 {
	sum := int64(0)
	for _, v := range seq {
		sum += v
	}
	return sum
}

// 最大値
// 空の列からseq[0]を読む代わりに、エラーを返す
func Max(seq []int64) (int64, error) {
	if len(seq) == 0 {
		return 0, ErrEmpty
	}
	max := seq[0]
	for _, v := range seq[1:] {
		if v > max {
			max = v
		}
	}
	return max, nil
}

// 全要素を1ずつ増やす（その場で書き換える）
func IncrementAll(seq []int64) {
	for i := range seq {
		seq[i]++
	}
}

// 閉区間[start, end]の合計
// ポインタ演算での走査ではなく、範囲チェック付きのインデックスアクセスを使う
func SumRange(seq []int64, start, end int) (int64, error) {
	if start < 0 || end >= len(seq) || start > end {
		return 0, fmt.Errorf("%w: [%d, %d] in length %d", ErrOutOfRange, start, end, len(seq))
	}
	sum := int64(0)
	for i := start; i <= end; i++ {
		sum += seq[i]
	}
	return sum, nil
}

// Get関係 ======================================================================

// 範囲チェック付きの要素取得
func Get(seq []int64, index int) (int64, error) {
	if index < 0 || index >= len(seq) {
		return 0, fmt.Errorf("%w: %d in length %d", ErrOutOfRange, index, len(seq))
	}
	return seq[index], nil
}

// Set関係 ======================================================================

// 範囲チェック付きの要素設定
func Set(seq []int64, index int, value int64) error {
	if index < 0 || index >= len(seq) {
		return fmt.Errorf("%w: %d in length %d", ErrOutOfRange, index, len(seq))
	}
	seq[index] = value
	return nil
}
