/*
Copyright © 2025 Kamil Kobak
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/kamilkobak/kkdash/pkg/publisher"
)

// parseOutputFormat reads the format flag and validates it against the
// supported output formats.
func parseOutputFormat(cmd *cli.Command) (publisher.Format, error) {
	f := publisher.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported values: %v)",
			string(f), publisher.SupportedFormats())
	}
	return f, nil
}
