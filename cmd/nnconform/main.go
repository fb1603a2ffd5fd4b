// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// nnconform runs the conformance corpus against an inference driver and
// reports a verdict per (model, test kind) pair.
//
// Example:
//
//	nnconform run --driver=sim --filter='add_.*'
package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/gomlx/nnconform/conform"
	"github.com/gomlx/nnconform/driver"
	_ "github.com/gomlx/nnconform/driver/sim"
	"github.com/gomlx/nnconform/testmodel"
)

var (
	flagDriver string
	flagFilter string
	flagKinds  []string

	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	skipStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

func main() {
	klog.InitFlags(nil)

	rootCmd := &cobra.Command{
		Use:           "nnconform",
		Short:         "Conformance harness for neural network inference drivers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the corpus against a driver",
		RunE:  runCorpus,
	}
	runCmd.Flags().StringVar(&flagDriver, "driver", "",
		"driver configuration as \"<name>:<config>\"; defaults to $NNCONFORM_DRIVER or the first registered driver")
	runCmd.Flags().StringVar(&flagFilter, "filter", "", "regexp selecting corpus model names")
	runCmd.Flags().StringSliceVar(&flagKinds, "kinds", []string{"general", "dynamic_shape", "quantization_coupling"},
		"test kinds to run")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the corpus models",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, named := range testmodel.Models(nil) {
				fmt.Println(named.Name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, listCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runCorpus(cmd *cobra.Command, args []string) error {
	kinds, err := parseKinds(flagKinds)
	if err != nil {
		return err
	}
	var nameRE *regexp.Regexp
	if flagFilter != "" {
		nameRE, err = regexp.Compile(flagFilter)
		if err != nil {
			return fmt.Errorf("invalid --filter: %w", err)
		}
	}

	var device driver.Device
	if flagDriver != "" {
		device = driver.NewWithConfig(flagDriver)
	} else {
		device = driver.New()
	}
	runner := conform.NewRunner(device)
	runID := uuid.NewString()
	klog.Infof("conformance run %s on driver %q", runID, device.Name())

	type job struct {
		kind  conform.TestKind
		named testmodel.NamedModel
	}
	var jobs []job
	for _, kind := range kinds {
		filter := filterFor(kind)
		for _, named := range testmodel.Models(filter) {
			if nameRE != nil && !nameRE.MatchString(named.Name) {
				continue
			}
			jobs = append(jobs, job{kind: kind, named: named})
		}
	}

	bar := progressbar.NewOptions(len(jobs),
		progressbar.OptionSetDescription("conformance"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionClearOnFinish())
	counts := make(map[conform.Verdict]int)
	for _, j := range jobs {
		res := runner.Run(j.kind, j.named.Name, j.named.Model)
		counts[res.Verdict]++
		printResult(j.kind, res)
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	fmt.Printf("\n%d pass, %d fail, %d skip (run %s)\n",
		counts[conform.Pass], counts[conform.Fail], counts[conform.Skip], runID)
	if counts[conform.Fail] > 0 {
		return fmt.Errorf("%d test(s) failed", counts[conform.Fail])
	}
	return nil
}

func printResult(kind conform.TestKind, res *conform.Result) {
	var tag string
	switch res.Verdict {
	case conform.Pass:
		tag = passStyle.Render("PASS")
	case conform.Fail:
		tag = failStyle.Render("FAIL")
	case conform.Skip:
		tag = skipStyle.Render("SKIP")
	}
	fmt.Printf("%s %s/%s\n", tag, kind, res.Name)
	for _, failure := range res.Failures {
		fmt.Printf("     %s\n", failure)
	}
	if res.SkipReason != "" {
		fmt.Printf("     %s\n", res.SkipReason)
	}
}

func parseKinds(names []string) ([]conform.TestKind, error) {
	kinds := make([]conform.TestKind, 0, len(names))
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "general":
			kinds = append(kinds, conform.KindGeneral)
		case "dynamic_shape", "dynamicshape":
			kinds = append(kinds, conform.KindDynamicShape)
		case "quantization_coupling", "quantizationcoupling":
			kinds = append(kinds, conform.KindQuantizationCoupling)
		default:
			return nil, fmt.Errorf("unknown test kind %q", name)
		}
	}
	return kinds, nil
}

func filterFor(kind conform.TestKind) testmodel.FilterFn {
	if kind == conform.KindQuantizationCoupling {
		return testmodel.Quant8Coupling
	}
	return testmodel.NotExpectFailure
}
