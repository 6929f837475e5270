package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tmarsteel/dprng/entropy"
	"github.com/tmarsteel/dprng/rng"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

var (
	seedFlag  int64
	countFlag int
)

var rootCmd = &cobra.Command{
	Use:   "dprng",
	Short: "draw reproducible pseudo-random values",
	Long: `dprng draws values from a deterministic, portable pseudo-random
generator. Given the same --seed, the tool prints the same values on any
platform, and so does every conforming implementation of the generator
in any language. Without --seed a random one is drawn from the OS and
logged so the run can be replayed.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	registerRootFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(intCmd, floatCmd, bytesCmd, hashCmd)
}

func registerRootFlags(fs *pflag.FlagSet) {
	fs.Int64Var(&seedFlag, "seed", -1, "28-bit seed; negative draws one from the OS entropy source")
	fs.IntVarP(&countFlag, "count", "n", 1, "number of values to draw")
}

// seedLogger forwards the generator's seed report to the CLI logger.
type seedLogger struct{}

func (seedLogger) Report(event rng.LogKind, r *rng.Rng, v ...interface{}) {
	if event == rng.LogSeeded {
		logger.Info().
			Str("seed", fmt.Sprintf("0x%07x", v[0].(uint32))).
			Msg("seeded from OS entropy; pass --seed to replay")
	}
}

func newRng() (*rng.Rng, error) {
	if seedFlag < 0 {
		return rng.New(rng.Opts{Entropy: entropy.OS, Logger: seedLogger{}})
	}
	if seedFlag > rng.Max {
		return nil, fmt.Errorf("seed %#x does not fit in 28 bits", seedFlag)
	}
	return rng.NewSeeded(uint32(seedFlag))
}

var intCmd = &cobra.Command{
	Use:   "int <min> <max>",
	Short: "draw integers uniformly from [min, max]",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := strconv.ParseInt(args[0], 0, 64)
		if err != nil {
			return fmt.Errorf("min: %w", err)
		}
		b, err := strconv.ParseInt(args[1], 0, 64)
		if err != nil {
			return fmt.Errorf("max: %w", err)
		}
		g, err := newRng()
		if err != nil {
			return err
		}
		for i := 0; i < countFlag; i++ {
			v, err := g.NextInt(a, b)
			if err != nil {
				return err
			}
			fmt.Println(v)
		}
		return nil
	},
}

var floatCmd = &cobra.Command{
	Use:   "float <min> <max>",
	Short: "draw floats uniformly from [min, max)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("min: %w", err)
		}
		b, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("max: %w", err)
		}
		g, err := newRng()
		if err != nil {
			return err
		}
		for i := 0; i < countFlag; i++ {
			v, err := g.NextFloat64(a, b)
			if err != nil {
				return err
			}
			fmt.Println(strconv.FormatFloat(v, 'g', -1, 64))
		}
		return nil
	},
}

var bytesCmd = &cobra.Command{
	Use:   "bytes <n>",
	Short: "draw n random bytes, hex encoded",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("n: %w", err)
		}
		g, err := newRng()
		if err != nil {
			return err
		}
		for i := 0; i < countFlag; i++ {
			buf, err := g.NextBytes(n)
			if err != nil {
				return err
			}
			fmt.Printf("%x\n", buf)
		}
		return nil
	},
}

var hashCmd = &cobra.Command{
	Use:   "hash <x>",
	Short: "apply the 28-bit hash to a value",
	Long: `hash applies the generator's 28-bit hash function to the given
value and prints the result. Useful for checking another implementation
against this one.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, err := strconv.ParseUint(args[0], 0, 32)
		if err != nil {
			return fmt.Errorf("x: %w", err)
		}
		if x > rng.Max {
			return fmt.Errorf("value %#x does not fit in 28 bits", x)
		}
		fmt.Printf("0x%07x\n", rng.Hash(uint32(x)))
		return nil
	},
}
