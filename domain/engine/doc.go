// Package engine implements a bounded, in-memory order-matching
// engine. Orders land in three fixed-capacity slot arenas (buy side,
// sell side, global arrival order) via atomic index reservation, and
// matching walks the arrival order with price-time priority, reserving
// matched quantity from both counterparties with conditional atomic
// decrements.
//
// The engine does no I/O: completed trades and accepted orders are
// streamed to a Sink. Engines are fully independent of each other; any
// number of them can run side by side without coordination.
package engine
