package emu_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/cusim/emu"
	"github.com/sarchlab/cusim/insts"
)

var _ = Describe("OpCache", func() {
	var c *emu.OpCache

	BeforeEach(func() {
		c = emu.NewOpCache()
	})

	It("should miss on an empty cache", func() {
		_, ok := c.Lookup(emu.CacheKey{Op: insts.OpADD, A: 1, B: 2})
		Expect(ok).To(BeFalse())
		Expect(c.Len()).To(Equal(0))
	})

	It("should hit after insert", func() {
		key := emu.CacheKey{Op: insts.OpADD, A: 1, B: 2}
		Expect(c.Insert(key, 3)).To(BeTrue())

		result, ok := c.Lookup(key)
		Expect(ok).To(BeTrue())
		Expect(result).To(Equal(3.0))
	})

	It("should never overwrite an existing entry", func() {
		key := emu.CacheKey{Op: insts.OpMUL, A: 2, B: 3}
		c.Insert(key, 6)

		Expect(c.Insert(key, 7)).To(BeFalse())
		result, _ := c.Lookup(key)
		Expect(result).To(Equal(6.0))
		Expect(c.Len()).To(Equal(1))
	})

	It("should distinguish instruction and operand order", func() {
		c.Insert(emu.CacheKey{Op: insts.OpSUB, A: 10, B: 5}, 5)

		_, ok := c.Lookup(emu.CacheKey{Op: insts.OpSUB, A: 5, B: 10})
		Expect(ok).To(BeFalse())
		_, ok = c.Lookup(emu.CacheKey{Op: insts.OpADD, A: 10, B: 5})
		Expect(ok).To(BeFalse())
	})

	It("should treat every NaN operand as the same value", func() {
		Expect(c.Insert(emu.CacheKey{Op: insts.OpADD, A: math.NaN(), B: 1}, 7)).To(BeTrue())

		result, ok := c.Lookup(emu.CacheKey{Op: insts.OpADD, A: math.NaN(), B: 1})
		Expect(ok).To(BeTrue())
		Expect(result).To(Equal(7.0))

		negNaN := math.Float64frombits(math.Float64bits(math.NaN()) | 1<<63)
		Expect(c.Insert(emu.CacheKey{Op: insts.OpADD, A: negNaN, B: 1}, 8)).To(BeFalse())
		Expect(c.Len()).To(Equal(1))
	})

	It("should share an entry between zero and negative zero", func() {
		c.Insert(emu.CacheKey{Op: insts.OpMUL, A: 0, B: 3}, 0)

		_, ok := c.Lookup(emu.CacheKey{Op: insts.OpMUL, A: math.Copysign(0, -1), B: 3})
		Expect(ok).To(BeTrue())
		Expect(c.Len()).To(Equal(1))
	})

	It("should list entries in a stable order", func() {
		c.Insert(emu.CacheKey{Op: insts.OpMUL, A: 10, B: 5}, 50)
		c.Insert(emu.CacheKey{Op: insts.OpADD, A: 15, B: 50}, 65)
		c.Insert(emu.CacheKey{Op: insts.OpADD, A: 10, B: 5}, 15)

		Expect(c.Entries()).To(Equal([]emu.CacheEntry{
			{Key: emu.CacheKey{Op: insts.OpADD, A: 10, B: 5}, Result: 15},
			{Key: emu.CacheKey{Op: insts.OpADD, A: 15, B: 50}, Result: 65},
			{Key: emu.CacheKey{Op: insts.OpMUL, A: 10, B: 5}, Result: 50},
		}))
	})

	It("should enumerate every entry", func() {
		c.Insert(emu.CacheKey{Op: insts.OpADD, A: 1, B: 1}, 2)
		c.Insert(emu.CacheKey{Op: insts.OpADD, A: 2, B: 2}, 4)

		seen := map[emu.CacheKey]float64{}
		for key, result := range c.All() {
			seen[key] = result
		}
		Expect(seen).To(HaveLen(2))
		Expect(seen).To(HaveKeyWithValue(emu.CacheKey{Op: insts.OpADD, A: 2, B: 2}, 4.0))
	})

	It("should empty on reset", func() {
		c.Insert(emu.CacheKey{Op: insts.OpADD, A: 1, B: 1}, 2)
		c.Reset()
		Expect(c.Len()).To(Equal(0))
	})
})
