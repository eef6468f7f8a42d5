package dump

import (
	"bytes"
	"io"
	"log"

	"github.com/spf13/viper"
)

var viperPrefix = "xd."

func ViperInit(prefix string) {
	viperPrefix = prefix + "."
	if ViperGetBool("debug") {
		var buf bytes.Buffer
		err := viper.WriteConfigTo(&buf)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("config file: %s\n### START ###\n%s\n### END ###\n", viper.ConfigFileUsed(), buf.String())
	}
}

func viperKey(key string) string {
	return viperPrefix + key
}

func ViperGetString(key string) string {
	return viper.GetString(viperKey(key))
}

func ViperGetBool(key string) bool {
	return viper.GetBool(viperKey(key))
}

func ViperGetInt(key string) int {
	return viper.GetInt(viperKey(key))
}

func ViperSetDefault(key string, value any) {
	viper.SetDefault(viperKey(key), value)
}

func ViperSet(key string, value any) {
	viper.Set(viperKey(key), value)
}

// FromConfig builds a Dumper for reader from the active viper section.
// Keys not present fall back to the standard defaults.
func FromConfig(reader io.Reader) *Dumper {
	ViperSetDefault("line_width", DefaultLineWidth)
	ViperSetDefault("group_length", DefaultGroupLength)
	ViperSetDefault("line_count", -1)
	return New(reader).
		ControlPictures(ViperGetBool("control_pictures")).
		LineCount(ViperGetInt("line_count")).
		LineWidth(ViperGetInt("line_width")).
		GroupLength(ViperGetInt("group_length"))
}
