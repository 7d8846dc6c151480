package latency_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/cusim/insts"
	"github.com/sarchlab/cusim/timing/latency"
)

var _ = Describe("Latency", func() {
	var table *latency.Table

	BeforeEach(func() {
		table = latency.NewTable()
	})

	DescribeTable("Default instruction latencies",
		func(op insts.Op, expected uint64) {
			Expect(table.GetLatency(op)).To(Equal(expected))
		},
		Entry("ADD", insts.OpADD, uint64(1)),
		Entry("SUB", insts.OpSUB, uint64(1)),
		Entry("AND", insts.OpAND, uint64(1)),
		Entry("OR", insts.OpOR, uint64(1)),
		Entry("MUL", insts.OpMUL, uint64(3)),
		Entry("DIV", insts.OpDIV, uint64(12)),
		Entry("MOD", insts.OpMOD, uint64(12)),
		Entry("POW", insts.OpPOW, uint64(20)),
		Entry("SQRT", insts.OpSQRT, uint64(15)),
		Entry("LOG", insts.OpLOG, uint64(25)),
		Entry("unknown", insts.OpUnknown, uint64(1)),
	)

	Describe("Access latency", func() {
		It("should charge the cache hit latency on a hit", func() {
			Expect(table.GetAccessLatency(insts.OpDIV, true)).To(Equal(uint64(1)))
		})

		It("should charge the ALU latency on a miss", func() {
			Expect(table.GetAccessLatency(insts.OpDIV, false)).To(Equal(uint64(12)))
		})
	})

	Describe("Simulated time", func() {
		It("should convert cycles at the configured clock", func() {
			Expect(table.CyclesToSeconds(1000)).To(BeNumerically("~", 1e-6, 1e-15))
		})
	})

	Describe("Custom Configuration", func() {
		It("should use custom config values", func() {
			config := latency.DefaultTimingConfig()
			config.AddSubLatency = 2
			config.MultiplyLatency = 4
			config.CacheHitLatency = 3
			config.ClockFreq = 2 * sim.GHz
			customTable := latency.NewTableWithConfig(config)

			Expect(customTable.GetLatency(insts.OpADD)).To(Equal(uint64(2)))
			Expect(customTable.GetLatency(insts.OpMUL)).To(Equal(uint64(4)))
			Expect(customTable.GetAccessLatency(insts.OpMUL, true)).To(Equal(uint64(3)))
			Expect(customTable.CyclesToSeconds(2000)).To(BeNumerically("~", 1e-6, 1e-15))
			Expect(customTable.Config()).To(BeIdenticalTo(config))
		})
	})
})

var _ = Describe("TimingConfig", func() {
	Describe("Default Config", func() {
		It("should create valid default config", func() {
			config := latency.DefaultTimingConfig()
			Expect(config.Validate()).To(Succeed())
		})
	})

	Describe("Validation", func() {
		DescribeTable("should reject zero values",
			func(mutate func(*latency.TimingConfig)) {
				config := latency.DefaultTimingConfig()
				mutate(config)
				Expect(config.Validate()).To(HaveOccurred())
			},
			Entry("add/sub", func(c *latency.TimingConfig) { c.AddSubLatency = 0 }),
			Entry("logic", func(c *latency.TimingConfig) { c.LogicLatency = 0 }),
			Entry("multiply", func(c *latency.TimingConfig) { c.MultiplyLatency = 0 }),
			Entry("divide", func(c *latency.TimingConfig) { c.DivideLatency = 0 }),
			Entry("power", func(c *latency.TimingConfig) { c.PowerLatency = 0 }),
			Entry("sqrt", func(c *latency.TimingConfig) { c.SqrtLatency = 0 }),
			Entry("log", func(c *latency.TimingConfig) { c.LogLatency = 0 }),
			Entry("cache hit", func(c *latency.TimingConfig) { c.CacheHitLatency = 0 }),
			Entry("clock", func(c *latency.TimingConfig) { c.ClockFreq = 0 }),
		)
	})

	Describe("Clone", func() {
		It("should create independent copy", func() {
			original := latency.DefaultTimingConfig()
			clone := original.Clone()

			clone.AddSubLatency = 100

			Expect(original.AddSubLatency).To(Equal(uint64(1)))
			Expect(clone.AddSubLatency).To(Equal(uint64(100)))
		})
	})

	Describe("File Operations", func() {
		var tempDir string

		BeforeEach(func() {
			var err error
			tempDir, err = os.MkdirTemp("", "latency-test")
			Expect(err).NotTo(HaveOccurred())
		})

		AfterEach(func() {
			_ = os.RemoveAll(tempDir)
		})

		It("should save and load config", func() {
			original := latency.DefaultTimingConfig()
			original.AddSubLatency = 5
			original.DivideLatency = 40

			path := filepath.Join(tempDir, "timing.json")
			Expect(original.SaveConfig(path)).To(Succeed())

			loaded, err := latency.LoadConfig(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(Equal(original))
		})

		It("should keep defaults for missing fields", func() {
			path := filepath.Join(tempDir, "partial.json")
			Expect(os.WriteFile(path, []byte(`{"multiply_latency": 7}`), 0644)).To(Succeed())

			loaded, err := latency.LoadConfig(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.MultiplyLatency).To(Equal(uint64(7)))
			Expect(loaded.AddSubLatency).To(Equal(uint64(1)))
			Expect(loaded.ClockFreq).To(Equal(1 * sim.GHz))
		})

		It("should return error for non-existent file", func() {
			_, err := latency.LoadConfig("/nonexistent/path/timing.json")
			Expect(err).To(HaveOccurred())
		})

		It("should return error for invalid JSON", func() {
			path := filepath.Join(tempDir, "invalid.json")
			err := os.WriteFile(path, []byte("not valid json"), 0644)
			Expect(err).NotTo(HaveOccurred())

			_, err = latency.LoadConfig(path)
			Expect(err).To(HaveOccurred())
		})
	})
})
