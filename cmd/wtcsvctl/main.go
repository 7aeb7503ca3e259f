// Command wtcsvctl inspects, edits and compares WT CSV localization tables.
package main

func main() {
	execute()
}
