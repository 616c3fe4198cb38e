/*

Package base provides the dynamic array of integers used by dynarray.

The dynamic array supports:

* Indexed Read and Write

* Positional Insertion and Deletion

* Capacity Doubling

*/
package base
