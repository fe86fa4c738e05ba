package cmd

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

var secretCmd = &cobra.Command{
	Use:   "secret",
	Short: "Generate a random JWT_SECRET value",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		for _, size := range []int{32, 64} {
			b, err := randomBytes(size)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%d-byte (%d-bit) secret:\n%s\n\n", size, size*8, hex.EncodeToString(b))
		}

		b, err := randomBytes(32)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Base64 encoded secret:\n%s\n\n", base64.StdEncoding.EncodeToString(b))
		fmt.Fprintln(out, "Set one of the above as JWT_SECRET in your environment or config file.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(secretCmd)
}

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return b, nil
}
