// tdr estimates cable length and impedance profiles from one-port
// reflection sweeps stored as Touchstone (.s1p) files.
package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-tdr/internal/touchstone"
	"github.com/cwbudde/algo-tdr/measure/tdr"
)

var (
	cfgFile    string  // Configuration file path
	formatName string  // Output curve: impedance, s11, vswr, refl, refl-bandpass
	windowName string  // Window: hann, blackman, minimal, normal, strong, maximal
	velocity   float64 // Velocity factor in (0, 1]
	cableName  string  // Catalog cable lookup; overrides --velocity
	cablesFile string  // Additional cable definitions (YAML)
	fftPoints  int     // Time-domain resolution, power of two
	showCurve  bool    // Print the full curve table
	curveRows  int     // Limit on curve table rows
	listCables bool    // List the cable catalog and exit
)

var rootCmd = &cobra.Command{
	Use:   "tdr [sweep.s1p]",
	Short: "Time-domain reflectometry from S11 sweep data",
	Long: `tdr transforms a reflection (S11) frequency sweep into the time domain
and reports the estimated cable length together with an impedance, return
loss, VSWR or reflection profile along the cable.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if listCables {
			printCables(loadCatalog())
			return nil
		}

		if len(args) == 0 {
			return fmt.Errorf("missing input file")
		}

		cmd.SilenceUsage = true
		return run(args[0])
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default ./tdr.yaml)")

	rootCmd.Flags().StringVarP(&formatName, "format", "f", "impedance", "curve format: impedance, s11, vswr, refl, refl-bandpass")
	rootCmd.Flags().StringVarP(&windowName, "window", "w", "hann", "window: hann, blackman, minimal, normal, strong, maximal")
	rootCmd.Flags().Float64VarP(&velocity, "velocity", "v", 0.66, "velocity factor of the cable")
	rootCmd.Flags().StringVar(&cableName, "cable", "", "catalog cable name (substring match, overrides --velocity)")
	rootCmd.Flags().StringVar(&cablesFile, "cables-file", "", "YAML file with additional cable definitions")
	rootCmd.Flags().IntVar(&fftPoints, "fft-points", 16384, "time-domain resolution (power of two)")
	rootCmd.Flags().BoolVar(&showCurve, "curve", false, "print the curve as a distance/value table")
	rootCmd.Flags().IntVar(&curveRows, "curve-rows", 32, "maximum rows in the curve table (0 = all)")
	rootCmd.Flags().BoolVar(&listCables, "list-cables", false, "list the cable catalog and exit")

	viper.BindPFlag("tdr.format", rootCmd.Flags().Lookup("format"))
	viper.BindPFlag("tdr.window", rootCmd.Flags().Lookup("window"))
	viper.BindPFlag("tdr.velocity", rootCmd.Flags().Lookup("velocity"))
	viper.BindPFlag("tdr.cable", rootCmd.Flags().Lookup("cable"))
	viper.BindPFlag("tdr.cables_file", rootCmd.Flags().Lookup("cables-file"))
	viper.BindPFlag("tdr.fft_points", rootCmd.Flags().Lookup("fft-points"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("tdr")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("TDR")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		formatName = viper.GetString("tdr.format")
		windowName = viper.GetString("tdr.window")
		velocity = viper.GetFloat64("tdr.velocity")
		cableName = viper.GetString("tdr.cable")
		cablesFile = viper.GetString("tdr.cables_file")
		fftPoints = viper.GetInt("tdr.fft_points")
	}
}

func run(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	samples, err := touchstone.ReadS1P(f)
	if err != nil {
		return err
	}

	format, err := parseFormat(formatName)
	if err != nil {
		return err
	}

	win, err := parseWindow(windowName)
	if err != nil {
		return err
	}

	vf := velocity
	if cableName != "" {
		cable, ok := tdr.CableByName(loadCatalog(), cableName)
		if !ok {
			return fmt.Errorf("no cable matches %q (try --list-cables)", cableName)
		}
		vf = cable.VelocityFactor
		fmt.Printf("Cable: %s\n", cable.Name)
	}

	cfg := tdr.Config{
		Format:         format,
		Window:         win,
		VelocityFactor: vf,
		FFTPoints:      fftPoints,
	}

	res, err := tdr.Compute(samples, cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Sweep: %d points, %s window, velocity factor %.3f\n", len(samples), win, vf)
	fmt.Printf("Estimated length: %s\n", res)

	if showCurve {
		printCurve(res)
	}

	return nil
}

// loadCatalog returns the built-in cable catalog, extended by the
// definitions from --cables-file when one is given.
func loadCatalog() []tdr.Cable {
	catalog := tdr.Cables()

	if cablesFile == "" {
		return catalog
	}

	f, err := os.Open(cablesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return catalog
	}
	defer f.Close()

	extra, err := tdr.LoadCables(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return catalog
	}

	// User definitions take precedence in substring lookups.
	return append(extra, catalog...)
}

func printCables(catalog []tdr.Cable) {
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "VELOCITY\tCABLE")
	for _, c := range catalog {
		fmt.Fprintf(w, "%.3f\t%s\n", c.VelocityFactor, c.Name)
	}
	w.Flush()
}

func printCurve(res *tdr.Result) {
	n := len(res.StepResponse)

	stride := 1
	if curveRows > 0 && n > curveRows {
		stride = n / curveRows
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "DISTANCE (m)\t%s\t\n", res.Format)
	for i := 0; i < n; i += stride {
		// The axis is round-trip distance; display one-way.
		fmt.Fprintf(w, "%.3f\t%.3f\t\n", res.DistanceAxis[i]/2, res.StepResponse[i])
	}
	w.Flush()
}

func parseFormat(name string) (tdr.Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "impedance", "z":
		return tdr.FormatImpedanceLowpass, nil
	case "s11":
		return tdr.FormatS11Lowpass, nil
	case "vswr":
		return tdr.FormatVSWRLowpass, nil
	case "refl":
		return tdr.FormatReflectionLowpass, nil
	case "refl-bandpass", "bandpass":
		return tdr.FormatReflectionBandpass, nil
	}
	return 0, fmt.Errorf("unknown format %q", name)
}

func parseWindow(name string) (tdr.Window, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hann":
		return tdr.WindowHann, nil
	case "blackman":
		return tdr.WindowBlackman, nil
	case "minimal":
		return tdr.WindowKaiserMinimal, nil
	case "normal":
		return tdr.WindowKaiserNormal, nil
	case "strong":
		return tdr.WindowKaiserStrong, nil
	case "maximal":
		return tdr.WindowKaiserMaximal, nil
	}
	return 0, fmt.Errorf("unknown window %q", name)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
