package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blaisecz/caffeine-planner/internal/api/validation"
	"github.com/blaisecz/caffeine-planner/internal/service"
)

// errInvalidRequest wraps decode and validation failures of the input document.
var errInvalidRequest = errors.New("invalid request")

// readRequest decodes the input document into v and validates it.
func readRequest(cmd *cobra.Command, v any) error {
	var r io.Reader = cmd.InOrStdin()
	if inputFile != "" && inputFile != "-" {
		f, err := os.Open(inputFile)
		if err != nil {
			return fmt.Errorf("open %s: %w", inputFile, err)
		}
		defer f.Close()
		r = f
	}

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errInvalidRequest, err)
	}

	if errs := validation.Validate(v); len(errs) > 0 {
		msgs := make([]string, 0, len(errs))
		for _, e := range errs {
			msgs = append(msgs, e.Field+": "+e.Message)
		}
		return fmt.Errorf("%w: %s", errInvalidRequest, strings.Join(msgs, "; "))
	}
	return nil
}

func writeResult(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// newPlanner builds a planner without storage; requests naming a user_id fail.
func newPlanner() service.PlannerService {
	return service.NewPlannerService(nil, service.PlannerOptions{MaxGridPoints: maxGridPoints})
}
