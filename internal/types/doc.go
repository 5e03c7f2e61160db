/*
Package types defines the small closed vocabularies shared across hcp.

# Enumerations

Method, Pane and InputTab are closed sets with a total order. Method and
Pane expose pure successor functions (Next, and Prev for Pane) so focus and
method cycling never leave the defined values:

	GET -> POST -> PUT -> DELETE -> GET
	url_bar -> method_selector -> input_area -> response_viewer -> url_bar

# Drafts

RequestDraft is an immutable snapshot of the editing surface. The dispatcher
builds a new one on every submission and hands it to the executor; it is
never stored or shared afterwards.
*/
package types
