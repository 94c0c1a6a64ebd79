// Package communication implements the Communication state machine: it
// drains items from a producer tile's OutputBuffer, occupies a wire path
// while the bytes cross the net, and deposits them in the consumer tile's
// InputBuffer. Communication never references Tile directly — only the
// buffers it drains/fills and the shared wire.Net — so the engine's
// cyclic tile/communication/net relationship never needs back-pointers.
package communication
