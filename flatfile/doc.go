/*
Package flatfile stores the CRM collections as pipe-delimited text files,
one record per line and one file per entity kind:

	data/customers.txt
	data/appointments.txt
	data/services.txt
	data/invoices.txt

A customer line looks like:

	id|first|last|email|phone|address|make|model|year|color|notes|2024-05-01T10:00:00

Text fields have "|" written as `\|` and newlines written as `\n`. Lists of
service ids are comma-joined into a single field. An absent value (an
invoice's appointment or payment date) is an empty field.

The format has no header, version marker or checksum. A text that already
contains a backslash followed by "|" or "n" does not survive a round-trip.
*/
package flatfile
