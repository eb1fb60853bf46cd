package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"plain-mapper/mapper"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func newToObjectCmd(a *app) *cobra.Command {
	var typeName string

	cmd := &cobra.Command{
		Use:   "to-object",
		Short: "Convert JSON from stdin into the given type and dump the result",
		Long: `Convert JSON from stdin into the given type and dump the result.

The selected rules apply to the conversion.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			obj, err := a.toObject(cmd.InOrStdin(), typeName, a.convertOptions()...)
			if err != nil {
				return err
			}

			dumpConfig.Fdump(cmd.OutOrStdout(), obj)

			return nil
		},
	}

	cmd.Flags().StringVar(&typeName, "type", "odata.User", "target type name")

	return cmd
}

func newRoundTripCmd(a *app) *cobra.Command {
	var typeName string

	cmd := &cobra.Command{
		Use:   "round-trip",
		Short: "Convert JSON from stdin into the given type and back to JSON",
		Long: `Convert JSON from stdin into the given type and back to JSON.

The object is built with the default rule only. The selected rules apply
when converting back to plain.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			obj, err := a.toObject(cmd.InOrStdin(), typeName)
			if err != nil {
				return err
			}

			plain, err := a.registry.ToPlain(obj, a.convertOptions()...)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			return enc.Encode(plain)
		},
	}

	cmd.Flags().StringVar(&typeName, "type", "odata.User", "target type name")

	return cmd
}

func newStoresCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stores",
		Short: "Dump the registered descriptors of both directions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.registry.Dump(cmd.OutOrStdout())
			return nil
		},
	}
}

// toObject decodes a JSON document from r and converts it into typeName.
// Arrays yield one object per element.
func (a *app) toObject(r io.Reader, typeName string, opts ...mapper.ConvertOption) (any, error) {
	t, ok := a.catalog.Type(typeName)
	if !ok {
		return nil, fmt.Errorf("unknown type %q (known: %v)", typeName, a.catalog.TypeNames())
	}

	var plain any
	if err := json.NewDecoder(r).Decode(&plain); err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}

	a.log.WithFields(a.fields(typeName)).Debug("converting to object")

	return a.registry.ToObject(t, plain, opts...)
}
