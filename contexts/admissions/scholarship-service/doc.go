// Package scholarshipservice is the minimal scholarship catalog: admins publish
// scholarships and everyone reads them. Application fees stored here are the
// only amounts checkout ever charges.
package scholarshipservice
