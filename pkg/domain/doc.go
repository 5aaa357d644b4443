/*
Package domain contains the survey documents served by the shell.

A survey is a flat JSON document loaded from a source such as
"/static/intro.json". Its prose fields (intro, question text, option labels)
are written in the restricted markdown dialect and rendered by package
markdown at display time. This package has no I/O.

# Key Entities

  - Survey: the document, with a title, an intro and an ordered list of questions.
  - Question: one prompt, either free text or a choice between options.
*/
package domain
