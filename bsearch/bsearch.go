package bsearch

import "github.com/yuya-isaka/chibialgo/util"

// ======================================================================
/*

探索対象の列は昇順ソート済み（非減少、重複は許容）であること
未ソートの列を渡した場合、結果は保証されない（クラッシュはしない）
ソート済みかどうかの確認は、呼び出し側がIsSorted()で事前に行う

見つからない場合は (0, false) を返す
-1のような番兵値は使わない（正当なインデックスと衝突しうるため）

*/
// ======================================================================

// 閉区間[low, high]を半分ずつ狭めていく二分探索
// midは low + (high-low)/2 で計算する
// (low+high)/2 だと、low+highがインデックス型の表現範囲を超えたときに壊れる
func Search(seq []int64, target int64) (int, bool) {
	low := 0
	high := len(seq) - 1

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

// オーバーフローする版の二分探索
// midを (low+high)/2 で計算するため、low+highが表現範囲を超えるとmidが負になる
// 教材としてあえて欠陥を残している（修正しないこと）
// 危険が実際に起きる様子はSearchNaive16で確認できる
func SearchNaive(seq []int64, target int64) (int, bool) {
	low := 0
	high := len(seq) - 1

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

// 比較関数を使った半開区間の二分探索
// 見つからない場合は挿入位置を返す
func SearchFunc(size int, f func(int) util.Ordering) (int, bool) {
	left := 0
	right := size
	for left < right {
		mid := left + (right-left)/2
		cmp := f(mid)
		if cmp == util.Less {
			left = mid + 1
		} else if cmp == util.Greater {
			right = mid
		} else {
			return mid, true
		}
	}
	return left, false
}

// ======================================================================

// 昇順ソート済み（非減少）かどうかの判定
// 隣接する要素を左から1回ずつ比較する
// 空列と要素1つの列はtrue
func IsSorted(seq []int64) bool {
	for i := 0; i < len(seq)-1; i++ {
		if util.CompareInt64(seq[i], seq[i+1]) == util.Greater {
			return false
		}
	}
	return true
}
