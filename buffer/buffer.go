package buffer

import (
	"errors"
	"fmt"
	"math"
)

// 範囲外アクセスエラー
var ErrOutOfRange = errors.New("index out of range")

// サイズ計算のオーバーフローエラー
var ErrSizeOverflow = errors.New("size computation overflows")

// ======================================================================

// 固定長のバイトバッファ
// すべてのアクセスが範囲チェックを通る
type Buffer struct {
	data []byte
}

// バッファの生成
func New(size int) (*Buffer, error) {
	if size < 0 {
		return nil, fmt.Errorf("invalid size: got %d", size)
	}
	return &Buffer{
		data: make([]byte, size),
	}, nil
}

// Get関係 ======================================================================

func (b *Buffer) Len() int {
	return len(b.data)
}

// 内容のコピーを返す（内部スライスは渡さない）
func (b *Buffer) Bytes() []byte {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

// 範囲チェック付きの1バイト取得
func (b *Buffer) Get(index int) (byte, error) {
	if index < 0 || index >= len(b.data) {
		return 0, fmt.Errorf("%w: %d in length %d", ErrOutOfRange, index, len(b.data))
	}
	return b.data[index], nil
}

// Set関係 ======================================================================

// 範囲チェック付きの1バイト書き込み
func (b *Buffer) Set(index int, value byte) error {
	if index < 0 || index >= len(b.data) {
		return fmt.Errorf("%w: %d in length %d", ErrOutOfRange, index, len(b.data))
	}
	b.data[index] = value
	return nil
}

// 全体を同じ値で埋める
// ループ条件は i < len であって i <= len ではない
func (b *Buffer) Fill(value byte) {
	for i := 0; i < len(b.data); i++ {
		b.data[i] = value
	}
}

// 長さを超えない範囲でコピーし、コピーしたバイト数を返す
// 入力がバッファより長くても、末尾を越えて書き込むことはない
func (b *Buffer) CopyFrom(src []byte) int {
	return copy(b.data, src)
}

// 内容をoffsetぶん左に詰める
// 詰めたあとの末尾はゼロで埋める
func (b *Buffer) ShiftLeft(offset int) error {
	if offset < 0 || offset > len(b.data) {
		return fmt.Errorf("%w: offset %d in length %d", ErrOutOfRange, offset, len(b.data))
	}
	copy(b.data, b.data[offset:])
	for i := len(b.data) - offset; i < len(b.data); i++ {
		b.data[i] = 0
	}
	return nil
}

// ======================================================================

// 要素数×要素サイズの計算
// 結果がintの表現範囲を超える場合はエラーを返す
// （負に回り込んだサイズで割り当てると、後続の書き込みが領域を越える）
func CheckedSize(count, elemSize int) (int, error) {
	if count < 0 || elemSize < 0 {
		return 0, fmt.Errorf("invalid size: count %d, elemSize %d", count, elemSize)
	}
	if count == 0 || elemSize == 0 {
		return 0, nil
	}
	if count > math.MaxInt/elemSize {
		return 0, fmt.Errorf("%w: count %d, elemSize %d", ErrSizeOverflow, count, elemSize)
	}
	return count * elemSize, nil
}
