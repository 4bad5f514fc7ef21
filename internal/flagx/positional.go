package flagx

import "strings"

// Positionals returns the arguments that are neither flags nor flag values.
// flagsTakingValue lists the flags whose following argument is a value and
// must be skipped ("-a host" style); "--flag=value" needs no listing.
func Positionals(args []string, flagsTakingValue []string) []string {
	takesValue := make(map[string]struct{}, len(flagsTakingValue))
	for _, f := range flagsTakingValue {
		takesValue[f] = struct{}{}
	}

	positionals := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") {
			if strings.Contains(arg, "=") {
				continue
			}
			if _, ok := takesValue[arg]; ok && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				i++ // skip the flag's value
			}
			continue
		}

		positionals = append(positionals, arg)
	}

	return positionals
}
