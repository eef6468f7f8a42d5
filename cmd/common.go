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
	"errors"
	"io"
	"log"
	"os"
	"strings"
	"syscall"

	"github.com/rstms/xd/dump"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func viperName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// OptionSwitch registers a boolean persistent flag bound to a viper key.
func OptionSwitch(cmd *cobra.Command, name, flag, description string) {
	if flag == "" {
		cmd.PersistentFlags().Bool(name, false, description)
	} else {
		cmd.PersistentFlags().BoolP(name, flag, false, description)
	}
	err := viper.BindPFlag(viperName(name), cmd.PersistentFlags().Lookup(name))
	cobra.CheckErr(err)
}

// OptionString registers a string persistent flag bound to a viper key.
func OptionString(cmd *cobra.Command, name, flag, defaultValue, description string) {
	if flag == "" {
		cmd.PersistentFlags().String(name, defaultValue, description)
	} else {
		cmd.PersistentFlags().StringP(name, flag, defaultValue, description)
	}
	err := viper.BindPFlag(viperName(name), cmd.PersistentFlags().Lookup(name))
	cobra.CheckErr(err)
}

func InitConfig() {
	cfgFile := viper.GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".xd")
	}
	viper.SetEnvPrefix("XD")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			log.Printf("using config file: %s\n", viper.ConfigFileUsed())
		}
	}
	dump.ViperInit("xd")
}

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Downstream consumers like `head` close stdout early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
