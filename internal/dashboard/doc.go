// Package dashboard turns a selected year into the status text and
// choropleth figure shown on the page, and dispatches UI events to the
// handlers that produce them.
//
// The Renderer is a pure function of the loaded table: the same year always
// yields the same figure, and the table is never modified. Side effects
// (metrics, the interaction stream) live in the Dispatcher, outside the
// handlers.
package dashboard
