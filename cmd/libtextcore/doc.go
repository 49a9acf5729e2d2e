/*
Command libtextcore builds the text primitives of package textcore as a C
shared library for the editor host:

  go build -buildmode=c-shared -o libtextcore.so ./cmd/libtextcore

The build emits a header libtextcore.h declaring the exported functions.
All functions take plain-old-data arguments, a byte pointer plus a length
for spans, and return a scalar. No memory is allocated or retained across
the boundary. NULL span pointers are treated as empty spans.

Encoding an invalid scalar value is a contract violation of the caller and
aborts the process.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.
*/
package main
