/*
	backlight reads and sets the screen brightness through /sys/class/backlight
*/

package main

import "github.com/hoppxi/backlight/internal/cmd"

func main() {
	cmd.Execute()
}
