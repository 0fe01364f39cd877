package bsearch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuya-isaka/chibialgo/bsearch"
)

// low+highが32767を超える列を用意する
// 要素は偶数のみなので、奇数を探すと必ずNotFoundになる
func makeWideSeq() []int64 {
	seq := make([]int64, 30000)
	for i := range seq {
		seq[i] = int64(i) * 2
	}
	return seq
}

func TestSearch16(t *testing.T) {
	seq := []int64{1, 3, 5, 7, 9, 11, 13, 15, 17, 19}
	tests := []struct {
		name   string
		target int64
		expect int16
		ok     bool
	}{
		{"Middle", 7, 3, true},
		{"Last", 19, 9, true},
		{"First", 1, 0, true},
		{"Absent", 10, 0, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			index, ok := bsearch.Search16(seq, test.target)
			assert.Equal(t, test.ok, ok)
			assert.Equal(t, test.expect, index)
		})
	}
}

func TestSearch16Empty(t *testing.T) {
	index, ok := bsearch.Search16([]int64{}, 1)
	assert.False(t, ok)
	assert.Equal(t, int16(0), index)
}

// 安全版は列の上端付近でも正しい結果を返す
func TestSearch16WideSequence(t *testing.T) {
	seq := makeWideSeq()
	for _, i := range []int16{0, 14999, 20000, 29998, 29999} {
		index, ok := bsearch.Search16(seq, seq[i])
		require.True(t, ok, "index %d", i)
		assert.Equal(t, i, index)
	}

	_, ok := bsearch.Search16(seq, 59999)
	assert.False(t, ok)
}

// 同じ入力で欠陥版はlow+highが回り込み、負のインデックスでパニックする
// 安全版が正しく動くこととの非対称性を確認する
func TestSearchNaive16Overflows(t *testing.T) {
	seq := makeWideSeq()

	index, ok := bsearch.Search16(seq, seq[29999])
	require.True(t, ok)
	require.Equal(t, int16(29999), index)

	assert.Panics(t, func() {
		bsearch.SearchNaive16(seq, seq[29999])
	})
}

// オーバーフローしない小さな列では、欠陥版も安全版と一致する
func TestSearchNaive16AgreesOnSmallInput(t *testing.T) {
	seq := []int64{1, 3, 5, 7, 9, 11, 13, 15, 17, 19}
	for _, target := range []int64{7, 19, 1, 10, 20, -5} {
		safeIndex, safeOK := bsearch.Search16(seq, target)
		naiveIndex, naiveOK := bsearch.SearchNaive16(seq, target)
		assert.Equal(t, safeIndex, naiveIndex)
		assert.Equal(t, safeOK, naiveOK)
	}
}
