package collation

import (
	"errors"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var (
	ErrUnrecognizedLanguage = errors.New("unrecognized language tag")
)

// Comparer 按语言规则比较字符串 线程不安全
type Comparer struct {
	tag      language.Tag
	collator *collate.Collator
}

// NewComparer 创建比较器
// @param lang BCP 47 语言标签 如 "zh" "de" "sv"
// @param opts 排序选项 如 collate.IgnoreCase collate.Numeric
func NewComparer(lang string, opts ...collate.Option) (*Comparer, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, errors.Join(ErrUnrecognizedLanguage, err)
	}
	return &Comparer{
		tag:      tag,
		collator: collate.New(tag, opts...),
	}, nil
}

// Tag 语言标签
func (c *Comparer) Tag() language.Tag {
	return c.tag
}

// Compare 返回 -1 0 1 可直接用于 container.CompareFunc
func (c *Comparer) Compare(a, b string) int {
	return c.collator.CompareString(a, b)
}

// Equal 按排序规则是否相等 可直接用于 container.EqualFunc
func (c *Comparer) Equal(a, b string) bool {
	return c.Compare(a, b) == 0
}

// Sort 按排序规则对字符串原地排序
func (c *Comparer) Sort(values []string) {
	c.collator.SortStrings(values)
}
