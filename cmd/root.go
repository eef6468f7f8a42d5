/*
Copyright © 2025 Matt Krueger <mkrueger@rstms.net>
All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

 1. Redistributions of source code must retain the above copyright notice,
    this list of conditions and the following disclaimer.

 2. Redistributions in binary form must reproduce the above copyright notice,
    this list of conditions and the following disclaimer in the documentation
    and/or other materials provided with the distribution.

 3. Neither the name of the copyright holder nor the names of its contributors
    may be used to endorse or promote products derived from this software
    without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
POSSIBILITY OF SUCH DAMAGE.
*/
package cmd

import (
	"os"

	"github.com/rstms/xd/dump"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Version: dump.Version,
	Use:     "xd [flags] [FILE]",
	Short:   "dump bytes as hex and ASCII",
	Long: `
Dump FILE or stdin as aligned hex and ASCII columns
`,
	Args: cobra.RangeArgs(0, 1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// copy selected cli config to xd section
		viper.Set("xd.control_pictures", viper.GetBool("control_pictures"))
		viper.Set("xd.line_count", viper.GetInt("line_count"))
		viper.Set("xd.line_width", viper.GetInt("line_width"))
		viper.Set("xd.group_length", viper.GetInt("group_length"))
		viper.Set("xd.verbose", viper.GetBool("verbose"))
		viper.Set("xd.debug", viper.GetBool("debug"))
	},
	Run: func(cmd *cobra.Command, args []string) {
		var input *os.File
		if len(args) > 0 {
			file, err := os.Open(args[0])
			cobra.CheckErr(err)
			defer file.Close()
			input = file
		} else {
			input = os.Stdin
		}
		err := dump.FromConfig(input).Dump(os.Stdout)
		if IsBrokenPipe(err) {
			return
		}
		cobra.CheckErr(err)
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)
	OptionString(rootCmd, "config", "c", "", "config file")
	OptionSwitch(rootCmd, "debug", "d", "produce debug output")
	OptionSwitch(rootCmd, "verbose", "v", "produce diagnostic output")
	OptionSwitch(rootCmd, "control-pictures", "p", "render C0 control bytes as Control Pictures glyphs")
	OptionString(rootCmd, "line-count", "n", "-1", "number of lines to dump, -1 for all")
	OptionString(rootCmd, "line-width", "w", "16", "bytes per line (1-256)")
	OptionString(rootCmd, "group-length", "g", "1", "bytes per hex group (1-256)")
}
