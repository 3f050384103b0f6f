package main

// General API information for swag.
//
//	@title			RefugeConnect API
//	@version		1.0
//	@description	Safe locations, helper directory and translation for refugees
//	@host			localhost:8080
//	@BasePath		/
