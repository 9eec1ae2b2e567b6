package cmd

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jxph/hls1024/hlshash"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Hash a message, a file, or standard input",
	Long: `Computes the HLS-1024 digest of the input and prints it as lowercase hex.
The message is taken from --message if set, otherwise from --file, otherwise
from standard input.`,
	Run: Run,
}

func init() {
	SetupRunFlags(runCmd)
	rootCmd.AddCommand(runCmd)
}

func Run(cmd *cobra.Command, args []string) {
	// Parse the configuration (can use CLI flags, environment variables, or config file)
	config := LoadConfig()

	// Route glog output per the config before anything logs.
	flag.Set("log_dir", config.LogDirectory)
	flag.Set("v", fmt.Sprintf("%d", config.GlogV))
	flag.Set("vmodule", config.GlogVmodule)
	flag.Set("alsologtostderr", "true")
	flag.Parse()
	glog.CopyStandardLogTo("INFO")

	config.Print()

	if config.SelfTest {
		if !RunSelfTest() {
			os.Exit(1)
		}
		return
	}

	data, err := readMessage(config)
	if err != nil {
		glog.Fatalf("Run: Problem acquiring the message: %v", err)
	}

	digest := hlshash.HLS1024(data)
	fmt.Println(hex.EncodeToString(digest[:]))
}

// readMessage picks the input source: --message wins, then --file, then
// standard input. I/O failures are returned for the caller to treat as fatal;
// the hash itself has no error paths.
func readMessage(config *Config) ([]byte, error) {
	if config.Message != "" {
		return []byte(config.Message), nil
	}

	if config.File != "" {
		data, err := os.ReadFile(config.File)
		if err != nil {
			return nil, errors.Wrapf(err, "readMessage: Problem reading file (%s)", config.File)
		}
		return data, nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, errors.Wrapf(err, "readMessage: Problem reading standard input")
	}
	return data, nil
}

func SetupRunFlags(cmd *cobra.Command) {
	// Input
	cmd.PersistentFlags().StringP("message", "m", "",
		"The message to hash, passed as a literal string. Takes precedence "+
			"over --file and standard input.")
	cmd.PersistentFlags().StringP("file", "f", "",
		"A path to a file whose contents are hashed. When neither --message "+
			"nor --file is set, the message is read from standard input.")
	cmd.PersistentFlags().Bool("selftest", false,
		"Run the built-in self-test instead of hashing input. The self-test "+
			"hashes a fixed message twice, checks the two digests agree, and "+
			"checks them against a pinned known-answer vector.")

	// Logging
	cmd.PersistentFlags().String("log-dir", "", "The directory for logs")
	cmd.PersistentFlags().Uint64("glog-v", 0, "The log level. 0 = INFO, 1 = DEBUG, 2 = TRACE. Defaults to zero")
	cmd.PersistentFlags().String("glog-vmodule", "",
		"The syntax of the argument is a comma-separated list of pattern=N, "+
			"where pattern is a literal file name (minus the \".go\" suffix) or \"glob\" "+
			"pattern and N is a V level.")

	cmd.PersistentFlags().VisitAll(func(flag *pflag.Flag) {
		viper.BindPFlag(flag.Name, flag)
	})
}
