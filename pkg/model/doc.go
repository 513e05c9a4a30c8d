// Package model implements the in-memory accessory database used on
// both sides of a HomeKit connection.
//
// The hierarchy is Accessories > Accessory > Service > Characteristic.
// Accessories carry a database-unique accessory id (aid); services and
// characteristics carry instance ids (iid) unique within their
// accessory. Both id spaces are monotonic and never reuse ids within
// a process.
//
// Services may link to sibling services. Links are one-directional
// references by pointer and serialize as the linked services' instance
// ids.
//
// The wire form of the database is defined in the wire package;
// Document and FromDocument convert between the two without losing
// unknown vendor types or optional metadata.
package model
