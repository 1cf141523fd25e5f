// An example addon for the Anaconda installer, written as a standalone D-Bus service.
//
// The addon collects a block of text and a "reverse" flag, either from the
// %addon org_fedora_hello_world section of a kickstart file or from one of its spokes
// (a GTK window loaded from the gui plugin, or the terminal UI in the tui package), and
// writes the text to root/hello_world.txt on the installed system at the end of the
// installation.
//
// See DESIGN.md for a code structure overview.
package hello_world
