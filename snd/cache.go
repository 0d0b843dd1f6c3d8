// SPDX-License-Identifier: GPL-2.0-or-later

package snd

type cache []*Sample

func (c *cache) Get(i int) *Sample {
	if i < 0 || i >= len(*c) {
		return nil
	}
	return (*c)[i]
}

func (c *cache) Has(n string) (int, bool) {
	for i, s := range *c {
		if s.name == n {
			return i, true
		}
	}
	return -1, false
}

func (c *cache) Add(s *Sample) int {
	r := len(*c)
	*c = append(*c, s)
	return r
}

func (c *cache) Clear() {
	*c = (*c)[:0]
}
