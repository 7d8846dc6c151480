package core_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/cusim/emu"
	"github.com/sarchlab/cusim/insts"
	"github.com/sarchlab/cusim/timing/core"
	"github.com/sarchlab/cusim/timing/latency"
)

var _ = Describe("Core", func() {
	var c *core.Core

	BeforeEach(func() {
		c = core.NewCore(latency.NewTable())
	})

	It("should create a core with a machine", func() {
		Expect(c).NotTo(BeNil())
		Expect(c.Machine).NotTo(BeNil())
		Expect(c.Stats()).To(BeZero())
	})

	It("should fall back to the default table", func() {
		c = core.NewCore(nil)
		Expect(c.Table().Config()).To(Equal(latency.DefaultTimingConfig()))
	})

	It("should charge ALU latency on a miss and hit latency on a hit", func() {
		Expect(c.Load(0, 10)).To(Succeed())
		Expect(c.Load(1, 5)).To(Succeed())

		_, err := c.ExecuteTo(insts.OpDIV, 0, 1, 2)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Stats()).To(Equal(core.Stats{Cycles: 12, Instructions: 1, Misses: 1}))

		_, err = c.ExecuteTo(insts.OpDIV, 0, 1, 3)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Stats()).To(Equal(core.Stats{Cycles: 13, Instructions: 2, Hits: 1, Misses: 1}))

		Expect(c.Stats().HitRate()).To(Equal(0.5))
		Expect(c.Stats().CPI()).To(Equal(6.5))
		Expect(c.SimulatedSeconds()).To(BeNumerically("~", 13e-9, 1e-18))
	})

	It("should not count failed executions", func() {
		_, err := c.ExecuteTo(insts.OpDIV, 0, 1, 2)
		Expect(err).To(MatchError(emu.ErrDivisionByZero))

		_, err = c.Execute(insts.OpADD, 0, 9)
		Expect(err).To(MatchError(emu.ErrInvalidRegister))

		Expect(c.Stats()).To(BeZero())
	})

	It("should run the canonical scenario", func() {
		Expect(c.Load(0, 10)).To(Succeed())
		Expect(c.Load(1, 5)).To(Succeed())

		for _, step := range []struct {
			op             insts.Op
			regA, regB, rd int
			result         float64
		}{
			{insts.OpADD, 0, 1, 2, 15},
			{insts.OpADD, 0, 1, 2, 15},
			{insts.OpMUL, 0, 1, 3, 50},
			{insts.OpADD, 2, 3, 0, 65},
		} {
			result, err := c.ExecuteTo(step.op, step.regA, step.regB, step.rd)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(step.result))
		}

		Expect(c.Machine.Registers()).To(Equal([emu.NumRegs]float64{65, 5, 15, 50}))
		Expect(c.Stats()).To(Equal(core.Stats{Cycles: 1 + 1 + 3 + 1, Instructions: 4, Hits: 1, Misses: 3}))

		v, err := c.Read(0)
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(65.0))
	})

	It("should clear machine and stats on reset", func() {
		Expect(c.Load(0, 3)).To(Succeed())
		_, err := c.Execute(insts.OpMUL, 0, 0)
		Expect(err).NotTo(HaveOccurred())

		c.Reset()
		Expect(c.Stats()).To(BeZero())
		Expect(c.Machine.Registers()).To(Equal([emu.NumRegs]float64{}))
		Expect(c.Machine.Cache().Len()).To(Equal(0))

		_, err = c.Execute(insts.OpADD, 0, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Stats().Misses).To(Equal(uint64(1)))
	})
})
