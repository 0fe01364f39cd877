package bsearch

import "github.com/yuya-isaka/chibialgo/util"

// ======================================================================
/*

intは64ビットなので、low+highがオーバーフローする長さの列を実機で作れない
そこでインデックス型をint16に狭めて、同じ危険を小さな列で再現する

列の長さは math.MaxInt16 (32767) 以下であること

*/
// ======================================================================

// 安全版（int16インデックス）
// midの計算が引き算ベースなので、low+highが32767を超える局面でも正しく動く
func Search16(seq []int64, target int64) (int16, bool) {
	low := int16(0)
	high := int16(len(seq)) - 1

	for low <= high {
		mid := low + (high-low)/2

		cmp := util.CompareInt64(seq[mid], target)
		if cmp == util.Equal {
			return mid, true
		} else if cmp == util.Less {
			low = mid + 1
		} else {
			high = mid - 1
		}
	}

	return 0, false
}

// オーバーフローする版（int16インデックス）
// low+highが32767を超えると負に回り込み、midが負になって実行時パニックする
// この非対称性（Search16は正しく、SearchNaive16は壊れる）が教材の核
func SearchNaive16(seq []int64, target int64) (int16, bool) {
	low := int16(0)
	high := int16(len(seq)) - 1

	for low <= high {
		mid := (low + high) / 2

		cmp := util.CompareInt64(seq[mid], target)
		if cmp == util.Equal {
			return mid, true
		} else if cmp == util.Less {
			low = mid + 1
		} else {
			high = mid - 1
		}
	}

	return 0, false
}
