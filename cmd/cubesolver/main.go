// Command cubesolver scrambles or accepts a cube state and reports an
// optimal (or near-optimal, if capped) solution using Korf's IDA* over
// precomputed pattern databases.
package main

func main() {
	Execute()
}
