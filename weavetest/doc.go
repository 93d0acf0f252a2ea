/*
Package weavetest provides test doubles and helpers shared by the tests of
all packages: mock authenticators, handlers, decorators and keys.
*/
package weavetest
