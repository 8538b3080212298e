/*
Increment the patch version stored in the build configuration file.

	cmake-bump [bump] [-file=PATH] [-project=NAME] [-commit] [-tag]

# Description

Find the first declaration of the form

	project(<NAME> VERSION <MAJOR>.<MINOR>.<PATCH>)

in the file (CMakeLists.txt in the working directory by default), increment
the patch number, rewrite the file and print the new version to stdout.

The declaration is written back using single spaces. The rest of the file is
kept as it is. When no declaration is found, the file is left untouched and
the command exits with status 1.

# Steps

This command goes through the following steps:

 1. Read the file and find the version declaration.
 2. Rewrite the file with the patch number incremented.
 3. In case -commit or -tag is set, commit the file.
 4. In case -tag is set, tag the commit as vMAJOR.MINOR.PATCH.
 5. Print the new version.

When step 3 or 4 fails, the steps done so far are rolled back.
*/
package bumpCmd
