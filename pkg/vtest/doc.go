// Package vtest provides testing helpers for vmini apps.
//
// A Harness mounts an app on an in-memory document and drives it the way
// a browser would, by element id.
//
// # Quick Start
//
//	func TestCounter(t *testing.T) {
//	    h := vtest.Mount(t, counterOptions())
//	    h.Click("inc")
//	    vtest.ExpectText(t, h, "count", "1")
//	}
//
// # Interaction
//
//	h.Click("add")              // dispatch "click" on #add
//	h.Input("draft", "milk")    // dispatch "input" with a string payload
//	h.Set("step", 5)            // write a data key directly
//
// Every helper fails the test on error, so a re-render that fails inside a
// handler surfaces at the line that triggered it.
//
// # Render Assertions
//
//	vtest.ExpectContains(t, h, `<p id="count">1</p>`)
//	vtest.ExpectNotContains(t, h, "done")
//	vtest.ExpectElement(t, h, "button")
//	vtest.ExpectAttribute(t, h, "item-0", "class", "todo done")
package vtest
