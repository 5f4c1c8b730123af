// Package observable implements lazy, cold, unicast streams.
//
// An Observable wraps a producer function. Every Subscribe runs the producer
// again with a fresh set of callbacks, so two subscriptions never share state.
// For a single subscription the following holds:
//
//   - callbacks fire in the order the producer calls them;
//   - at most one of error and complete is delivered, and nothing follows it;
//   - the producer's cleanup runs exactly once, either when the subscription
//     is disposed or right after a terminal notification;
//   - a panic raised by the producer becomes an error notification.
//
// Delivery is synchronous. Producers must not call their callbacks
// concurrently. Panics raised by subscriber callbacks are not recovered and
// reach whoever triggered the notification.
package observable
