/*
Package mapfilefs serves generated map files from an in-memory cache.

Map files describe maps for a map server: image size, extent, units and a
list of data layers. Producing them is expensive enough to keep the results
around, so map files are generated on demand, cached by map ID and expired
or evicted when their sources change.

Packages

The module is organized bottom-up:

  nodepool   recycling free lists for tree and list nodes
  bstree     an ordered index of intrusive binary search tree nodes
  dllist     a doubly linked sequence with splicing and merge sort
  buffer     an indenting text buffer of string fragments
  mapfile    the map object model and its serialization
  cache      the map file cache, indexed by bstree and listed by dllist
  mapfs      an io/fs view of the cache
  cmd/mapcache  a command line tool to populate and inspect a cache

Tracing

All packages trace to the tracer selected by key 'mapfilefs'. Clients
configure tracing with the schuko module.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package mapfilefs
