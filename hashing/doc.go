/*
Package hashing provides the non-cryptographic hash functions used for
content fingerprints: murmur3, FNV-1a and a combiner for composite keys.

All results are bit-exact with the hashes computed by the C++ editor host,
as hash values may be persisted or compared across the language boundary.
The functions are pure and safe for concurrent use.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.
*/
package hashing
