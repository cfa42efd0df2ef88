package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blaisecz/caffeine-planner/internal/domain"
)

var sensitivityCmd = &cobra.Command{
	Use:   "sensitivity",
	Short: "Derive a sensitivity profile",
	Long:  `Reads {"profile": {...}} and prints the derived half-life, sleep decay and crash threshold.`,
	Args:  cobra.NoArgs,
	RunE:  runSensitivity,
}

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Predict level, crash and sleep score",
	Long:  "Reads a timeline request (doses, now, sleep_time, curve) and prints the current level, crash time, sleep score and optional curve.",
	Args:  cobra.NoArgs,
	RunE:  runTimeline,
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a schedule against constraints",
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Propose doses that maximize alertness",
	Long:  "Reads existing doses, constraints, grid params and a window, and prints the proposed schedule with its utility.",
	Args:  cobra.NoArgs,
	RunE:  runOptimize,
}

func runSensitivity(cmd *cobra.Command, args []string) error {
	var req domain.SensitivityRequest
	if err := readRequest(cmd, &req); err != nil {
		return err
	}

	resp, err := newPlanner().Sensitivity(cmd.Context(), domain.ProfileRef{Profile: &req.Profile})
	if err != nil {
		return fmt.Errorf("sensitivity: %w", err)
	}
	return writeResult(cmd, resp)
}

func runTimeline(cmd *cobra.Command, args []string) error {
	var req domain.TimelineRequest
	if err := readRequest(cmd, &req); err != nil {
		return err
	}

	resp, err := newPlanner().Timeline(cmd.Context(), &req)
	if err != nil {
		return fmt.Errorf("timeline: %w", err)
	}
	return writeResult(cmd, resp)
}

func runValidate(cmd *cobra.Command, args []string) error {
	var req domain.ValidateScheduleRequest
	if err := readRequest(cmd, &req); err != nil {
		return err
	}

	resp, err := newPlanner().ValidateSchedule(cmd.Context(), &req)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	return writeResult(cmd, resp)
}

func runOptimize(cmd *cobra.Command, args []string) error {
	var req domain.OptimizeRequest
	if err := readRequest(cmd, &req); err != nil {
		return err
	}

	resp, err := newPlanner().Optimize(cmd.Context(), &req)
	if err != nil {
		return fmt.Errorf("optimize: %w", err)
	}
	return writeResult(cmd, resp)
}
