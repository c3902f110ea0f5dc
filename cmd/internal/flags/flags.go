// Package flags binds cobra flags to viper configuration keys.
package flags

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Bind binds flag to the viper key so an explicitly set flag overrides the
// config file and environment. It panics on a nil flag, which only happens
// when a flag name is misspelled.
func Bind(key string, flag *pflag.Flag) {
	if flag == nil {
		panic(fmt.Sprintf("flags: no flag to bind to %q", key))
	}
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("flags: binding %q: %v", key, err))
	}
}
