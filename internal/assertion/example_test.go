package assertion

func ExamplePrint() {
	Print("121", true, true)
	Print("x", 1, 2)

	// Output:
	// Test 121 passed
	// Test x failed: 1 != 2
}
