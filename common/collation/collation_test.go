package collation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/collate"

	"github.com/peng-qing/go_vector/common/container"
)

func TestComparerLanguageRules(t *testing.T) {
	de, err := NewComparer("de")
	require.NoError(t, err)
	sv, err := NewComparer("sv")
	require.NoError(t, err)

	// 德语中 ä 与 a 同组 瑞典语中 ä 排在 z 之后
	assert.Equal(t, -1, de.Compare("äpfel", "zebra"))
	assert.Equal(t, 1, sv.Compare("äpfel", "zebra"))
}

func TestComparerVersusByteOrder(t *testing.T) {
	en, err := NewComparer("en")
	require.NoError(t, err)

	x := container.Of("apple", "Zebra")
	y := container.Of("apple", "banana")

	// 按字节 'Z' < 'b' 按语言规则 banana < zebra
	assert.Equal(t, -1, container.Compare(x, y))
	assert.Equal(t, 1, container.CompareFunc(x, y, en.Compare))
	assert.True(t, container.Less(x, y))
}

func TestComparerIgnoreCase(t *testing.T) {
	en, err := NewComparer("en", collate.IgnoreCase)
	require.NoError(t, err)
	assert.Equal(t, "en", en.Tag().String())

	assert.True(t, container.EqualFunc(container.Of("Go", "Vector"), container.Of("go", "VECTOR"), en.Equal))
	assert.False(t, container.EqualFunc(container.Of("Go"), container.Of("Rust"), en.Equal))
}

func TestComparerSort(t *testing.T) {
	en, err := NewComparer("en")
	require.NoError(t, err)
	v := container.Of("b", "C", "a")
	en.Sort(v.Data())
	assert.Equal(t, []string{"a", "b", "C"}, v.Value())
}

func TestComparerInvalidTag(t *testing.T) {
	_, err := NewComparer("not a tag!")
	assert.ErrorIs(t, err, ErrUnrecognizedLanguage)
}
