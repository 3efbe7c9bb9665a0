// Package models holds the records exchanged with the jotti backend together
// with their zog schemas. Each record has a Validate method so the gateway
// can check a decoded response before handing it out.
package models
