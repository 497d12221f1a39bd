package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/cvoutline/internal/schemas"
)

func newValidateCmd(a *app) *cobra.Command {
	var schema string

	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Validate a JSON file against the layout or profile schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := schemaName(schema)
			if err != nil {
				return err
			}

			err = schemas.ValidateFile(name, args[0])

			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				for _, fe := range validationErr.Errors {
					a.logger.Debug("schema violation", "field", fe.Field, "message", fe.Message)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "Validation failed")
				return err
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Validation passed: %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&schema, "schema", "s", "layout", "Schema to use: layout or profile")
	return cmd
}

func schemaName(s string) (string, error) {
	switch s {
	case "layout", schemas.Layout:
		return schemas.Layout, nil
	case "profile", schemas.Profile:
		return schemas.Profile, nil
	default:
		return "", fmt.Errorf("unknown schema %q (want layout or profile)", s)
	}
}
