// Package domain defines the Contact record, its query criteria and its wire form.
package domain
