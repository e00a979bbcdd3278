package bitset_test

import (
	"testing"

	"github.com/dekarrin/ictiobus/bitset"
	"github.com/stretchr/testify/assert"
)

func Test_Set_AddTestRemove(t *testing.T) {
	assert := assert.New(t)

	s := bitset.New(10)
	assert.False(s.Test(3))
	s.Add(3)
	assert.True(s.Test(3))
	s.Remove(3)
	assert.False(s.Test(3))
}

func Test_Set_OutOfRangeIsNoOp(t *testing.T) {
	assert := assert.New(t)

	s := bitset.New(4)
	s.Add(99)
	assert.True(s.Empty())
	assert.False(s.Test(99))
}

func Test_Set_UnionInPlace_ReportsChanged(t *testing.T) {
	assert := assert.New(t)

	a := bitset.New(8)
	a.Add(1)
	b := bitset.New(8)
	b.Add(1)
	b.Add(5)

	changed := a.UnionInPlace(b)
	assert.True(changed)
	assert.True(a.Test(5))

	// second union of the same set changes nothing further
	changed = a.UnionInPlace(b)
	assert.False(changed)
}

func Test_Set_Equal(t *testing.T) {
	assert := assert.New(t)

	a := bitset.New(8)
	a.Add(2)
	a.Add(4)
	b := bitset.New(8)
	b.Add(4)
	b.Add(2)

	assert.True(a.Equal(b))

	b.Add(7)
	assert.False(a.Equal(b))
}

func Test_Set_Elements(t *testing.T) {
	assert := assert.New(t)

	s := bitset.New(70)
	s.Add(0)
	s.Add(63)
	s.Add(64)
	s.Add(69)

	assert.Equal([]int{0, 63, 64, 69}, s.Elements())
}

func Test_Set_Key_EqualSetsHaveEqualKeys(t *testing.T) {
	assert := assert.New(t)

	a := bitset.New(20)
	a.Add(1)
	a.Add(18)
	b := bitset.New(20)
	b.Add(18)
	b.Add(1)

	assert.Equal(a.Key(), b.Key())

	b.Add(2)
	assert.NotEqual(a.Key(), b.Key())
}

func Test_Set_Clone_Independent(t *testing.T) {
	assert := assert.New(t)

	a := bitset.New(8)
	a.Add(1)
	b := a.Clone()
	b.Add(2)

	assert.False(a.Test(2))
	assert.True(b.Test(2))
}
