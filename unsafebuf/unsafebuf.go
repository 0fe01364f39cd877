// 範囲チェックを素通りする生ポインタアクセスのデモ
//
// このパッケージは脆弱性そのものを見せるためのもので、安全なサブセットの外にある
// Goではunsafe.Pointerという明示的な脱出口を通らないと、こういう書き込みは書けない
// 教材以外で使わないこと
package unsafebuf

import "unsafe"

// 範囲チェックなしの1バイト書き込み
// indexがlen(buf)以上でも止まらず、隣接するメモリを黙って上書きする
// 同じ割り当ての外に出た場合の挙動は未定義
func SetUnchecked(buf []byte, index int, value byte) {
	p := unsafe.Add(unsafe.Pointer(unsafe.SliceData(buf)), index)
	*(*byte)(p) = value
}

// 範囲チェックなしの1バイト読み出し
func GetUnchecked(buf []byte, index int) byte {
	p := unsafe.Add(unsafe.Pointer(unsafe.SliceData(buf)), index)
	return *(*byte)(p)
}
