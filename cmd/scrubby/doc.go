// Scrubby is a local CLI that scrubs secrets and personal data from text
// before it is pasted somewhere it should not be.
//
// It replaces emails, IPv4 addresses, UUIDv4s, JWTs and high-entropy tokens
// with placeholders such as <EMAIL> or, with --stable, <EMAIL_1>.
//
// Usage:
//
//	scrubby                      # clean the clipboard once
//	scrubby watch                # clean the clipboard whenever it changes
//	scrubby stdin < notes.txt    # clean stdin to stdout
//	scrubby file --write a.log   # clean files in place
//	scrubby scan < notes.txt     # list what would be replaced
//	scrubby config init          # write a default config.toml
package main
