package doxygenx

// registry lists every option in the order it is written to the configuration file.
// Descriptions are emitted verbatim as the comment line above each entry.
var registry = []Option{
	{Key: "DOXYFILE_ENCODING", Kind: KindString, Default: "UTF-8", Description: "# Encoding used for all characters in this configuration file."},
	{Key: "PROJECT_NAME", Kind: KindString, Default: "", Description: "# Single word (or quoted sequence of words) naming the project."},
	{Key: "PROJECT_NUMBER", Kind: KindString, Default: "", Description: "# Project or revision number, e.g. a version control tag."},
	{Key: "OUTPUT_DIRECTORY", Kind: KindString, Default: "", Description: "# Base path where the generated documentation is written."},
	{Key: "CREATE_SUBDIRS", Kind: KindBool, Default: "NO", Description: "# Spread generated files over 4096 sub-directories under each output format directory."},
	{Key: "OUTPUT_LANGUAGE", Kind: KindString, Default: "English", Description: "# Language in which all generated documentation is written."},
	{Key: "BRIEF_MEMBER_DESC", Kind: KindBool, Default: "YES", Description: "# Include brief member descriptions after the members listed in file and class documentation."},
	{Key: "REPEAT_BRIEF", Kind: KindBool, Default: "YES", Description: "# Prepend the brief description of a member or function before the detailed description."},
	{Key: "ABBREVIATE_BRIEF", Kind: KindString, Default: "\"The $name class\" \"The $name widget\" \"The $name file\" is provides specifies contains represents a an the", Description: "# Phrases stripped from the start of brief descriptions."},
	{Key: "ALWAYS_DETAILED_SEC", Kind: KindBool, Default: "NO", Description: "# Generate a detailed section even if there is only a brief description."},
	{Key: "INLINE_INHERITED_MEMB", Kind: KindBool, Default: "NO", Description: "# Show all inherited members of a class as if they were ordinary class members."},
	{Key: "FULL_PATH_NAMES", Kind: KindBool, Default: "YES", Description: "# Prepend the full path before file names in the file list and header files."},
	{Key: "STRIP_FROM_PATH", Kind: KindString, Default: "", Description: "# Leading parts of paths stripped from displayed file names."},
	{Key: "STRIP_FROM_INC_PATH", Kind: KindString, Default: "", Description: "# Leading parts of paths stripped from include paths shown in class documentation."},
	{Key: "SHORT_NAMES", Kind: KindBool, Default: "NO", Description: "# Generate shorter, less readable file names."},
	{Key: "JAVADOC_AUTOBRIEF", Kind: KindBool, Default: "NO", Description: "# Treat the first line of a JavaDoc-style comment as the brief description."},
	{Key: "QT_AUTOBRIEF", Kind: KindBool, Default: "NO", Description: "# Treat the first line of a Qt-style comment as the brief description."},
	{Key: "MULTILINE_CPP_IS_BRIEF", Kind: KindBool, Default: "NO", Description: "# Treat a multi-line C++ special comment block as a brief description."},
	{Key: "INHERIT_DOCS", Kind: KindBool, Default: "YES", Description: "# Undocumented members inherit the documentation of the member they re-implement."},
	{Key: "SEPARATE_MEMBER_PAGES", Kind: KindBool, Default: "NO", Description: "# Produce a new page for each member."},
	{Key: "TAB_SIZE", Kind: KindInt, Default: "8", Description: "# Number of spaces a tab character is expanded to."},
	{Key: "ALIASES", Kind: KindString, Default: "", Description: "# Aliases that act as commands in the documentation, in the form name=value."},
	{Key: "OPTIMIZE_OUTPUT_FOR_C", Kind: KindBool, Default: "NO", Description: "# Optimize the output for sources that consist of C code only."},
	{Key: "OPTIMIZE_OUTPUT_JAVA", Kind: KindBool, Default: "NO", Description: "# Optimize the output for Java or Python sources."},
	{Key: "OPTIMIZE_FOR_FORTRAN", Kind: KindBool, Default: "NO", Description: "# Optimize the output for Fortran sources."},
	{Key: "OPTIMIZE_OUTPUT_VHDL", Kind: KindBool, Default: "NO", Description: "# Optimize the output for VHDL sources."},
	{Key: "BUILTIN_STL_SUPPORT", Kind: KindBool, Default: "NO", Description: "# Enable matching of function declarations and definitions that use STL classes as arguments."},
	{Key: "CPP_CLI_SUPPORT", Kind: KindBool, Default: "NO", Description: "# Enable parsing support for Microsoft C++/CLI."},
	{Key: "SIP_SUPPORT", Kind: KindBool, Default: "NO", Description: "# Parse sources as Python SIP files."},
	{Key: "IDL_PROPERTY_SUPPORT", Kind: KindBool, Default: "YES", Description: "# Treat Microsoft IDL getter and setter methods as properties."},
	{Key: "DISTRIBUTE_GROUP_DOC", Kind: KindBool, Default: "NO", Description: "# Reuse the documentation of the first member of a group for the other members."},
	{Key: "SUBGROUPING", Kind: KindBool, Default: "YES", Description: "# Allow class member groups of the same type to form a subgroup."},
	{Key: "TYPEDEF_HIDES_STRUCT", Kind: KindBool, Default: "NO", Description: "# Document a typedef of a struct, union or enum with the name of the typedef."},
	{Key: "SYMBOL_CACHE_SIZE", Kind: KindInt, Default: "0", Description: "# Size of the symbol lookup cache as a power of two (0 means 65536 symbols)."},
	{Key: "EXTRACT_ALL", Kind: KindBool, Default: "NO", Description: "# Assume all entities are documented, even when no documentation is available."},
	{Key: "EXTRACT_PRIVATE", Kind: KindBool, Default: "NO", Description: "# Include all private members of a class."},
	{Key: "EXTRACT_STATIC", Kind: KindBool, Default: "NO", Description: "# Include all static members of a file."},
	{Key: "EXTRACT_LOCAL_CLASSES", Kind: KindBool, Default: "YES", Description: "# Include classes and structs defined locally in source files."},
	{Key: "EXTRACT_LOCAL_METHODS", Kind: KindBool, Default: "NO", Description: "# Include local methods defined in the implementation section (Objective-C)."},
	{Key: "EXTRACT_ANON_NSPACES", Kind: KindBool, Default: "NO", Description: "# Extract members of anonymous namespaces."},
	{Key: "HIDE_UNDOC_MEMBERS", Kind: KindBool, Default: "NO", Description: "# Hide all undocumented members of documented classes, files or namespaces."},
	{Key: "HIDE_UNDOC_CLASSES", Kind: KindBool, Default: "NO", Description: "# Hide all undocumented classes from the class hierarchy."},
	{Key: "HIDE_FRIEND_COMPOUNDS", Kind: KindBool, Default: "NO", Description: "# Hide all friend declarations."},
	{Key: "HIDE_IN_BODY_DOCS", Kind: KindBool, Default: "NO", Description: "# Hide documentation blocks found inside the body of a function."},
	{Key: "INTERNAL_DOCS", Kind: KindBool, Default: "NO", Description: "# Include documentation after the internal command."},
	{Key: "CASE_SENSE_NAMES", Kind: KindBool, Default: "YES", Description: "# Generate file names with upper-case letters kept as-is."},
	{Key: "HIDE_SCOPE_NAMES", Kind: KindBool, Default: "NO", Description: "# Show members with their full class and namespace scopes hidden."},
	{Key: "SHOW_INCLUDE_FILES", Kind: KindBool, Default: "YES", Description: "# Put a list of the files included by a file in its documentation."},
	{Key: "INLINE_INFO", Kind: KindBool, Default: "YES", Description: "# Insert an [inline] tag for inline members."},
	{Key: "SORT_MEMBER_DOCS", Kind: KindBool, Default: "YES", Description: "# Sort the detailed documentation of members alphabetically."},
	{Key: "SORT_BRIEF_DOCS", Kind: KindBool, Default: "NO", Description: "# Sort the brief descriptions of members alphabetically."},
	{Key: "SORT_GROUP_NAMES", Kind: KindBool, Default: "NO", Description: "# Sort the hierarchy of group names alphabetically."},
	{Key: "SORT_BY_SCOPE_NAME", Kind: KindBool, Default: "NO", Description: "# Sort the class list by fully-qualified names including namespaces."},
	{Key: "GENERATE_TODOLIST", Kind: KindBool, Default: "YES", Description: "# Enable the todo list."},
	{Key: "GENERATE_TESTLIST", Kind: KindBool, Default: "YES", Description: "# Enable the test list."},
	{Key: "GENERATE_BUGLIST", Kind: KindBool, Default: "YES", Description: "# Enable the bug list."},
	{Key: "GENERATE_DEPRECATEDLIST", Kind: KindBool, Default: "YES", Description: "# Enable the deprecated list."},
	{Key: "ENABLED_SECTIONS", Kind: KindString, Default: "", Description: "# Conditional documentation sections to enable."},
	{Key: "MAX_INITIALIZER_LINES", Kind: KindInt, Default: "30", Description: "# Maximum number of lines the initial value of a variable or define may span to be shown."},
	{Key: "SHOW_USED_FILES", Kind: KindBool, Default: "YES", Description: "# List the files used to generate the documentation at the bottom of class and struct pages."},
	{Key: "SHOW_DIRECTORIES", Kind: KindBool, Default: "NO", Description: "# Show the directory hierarchy in the documentation."},
	{Key: "SHOW_FILES", Kind: KindBool, Default: "YES", Description: "# Show the Files page."},
	{Key: "SHOW_NAMESPACES", Kind: KindBool, Default: "YES", Description: "# Show the Namespaces page."},
	{Key: "FILE_VERSION_FILTER", Kind: KindString, Default: "", Description: "# Program invoked to get the current version of each file."},
	{Key: "LAYOUT_FILE", Kind: KindString, Default: "", Description: "# Layout file describing the structure of the generated output."},
	{Key: "QUIET", Kind: KindBool, Default: "NO", Description: "# Turn off messages written to standard output."},
	{Key: "WARNINGS", Kind: KindBool, Default: "YES", Description: "# Generate warnings on standard error."},
	{Key: "WARN_IF_UNDOCUMENTED", Kind: KindBool, Default: "YES", Description: "# Warn about undocumented members."},
	{Key: "WARN_IF_DOC_ERROR", Kind: KindBool, Default: "YES", Description: "# Warn about potential errors in the documentation."},
	{Key: "WARN_NO_PARAMDOC", Kind: KindBool, Default: "NO", Description: "# Warn about functions that are documented without documenting their parameters or return value."},
	{Key: "WARN_FORMAT", Kind: KindQuotedString, Default: "$file:$line: $text", Description: "# Format of warning and error messages."},
	{Key: "WARN_LOGFILE", Kind: KindString, Default: "", Description: "# File to which warning and error messages are written."},
	{Key: "INPUT", Kind: KindString, Default: "", Description: "# Files and directories that contain documented source files."},
	{Key: "INPUT_ENCODING", Kind: KindString, Default: "UTF-8", Description: "# Character encoding of the source files."},
	{Key: "FILE_PATTERNS", Kind: KindString, Default: "*.c *.cc *.cxx *.cpp *.c++ *.java *.ii *.ixx *.ipp *.i++ *.inl *.h *.hh *.hxx *.hpp *.h++ *.idl *.odl *.cs *.php *.php3 *.inc *.m *.mm *.py *.f90", Description: "# Wildcard patterns used to filter source files in input directories."},
	{Key: "RECURSIVE", Kind: KindBool, Default: "NO", Description: "# Search subdirectories of the input directories."},
	{Key: "EXCLUDE", Kind: KindString, Default: "", Description: "# Files or directories excluded from the input."},
	{Key: "EXCLUDE_SYMLINKS", Kind: KindBool, Default: "NO", Description: "# Exclude symbolic links from the input."},
	{Key: "EXCLUDE_PATTERNS", Kind: KindString, Default: "", Description: "# Wildcard patterns of files and directories excluded from the input."},
	{Key: "EXCLUDE_SYMBOLS", Kind: KindString, Default: "", Description: "# Symbol names excluded from the output."},
	{Key: "EXAMPLE_PATH", Kind: KindString, Default: "", Description: "# Files or directories that contain example code fragments."},
	{Key: "EXAMPLE_PATTERNS", Kind: KindString, Default: "*", Description: "# Wildcard patterns used to filter files in example directories."},
	{Key: "EXAMPLE_RECURSIVE", Kind: KindBool, Default: "NO", Description: "# Search subdirectories of example directories."},
	{Key: "IMAGE_PATH", Kind: KindString, Default: "", Description: "# Files or directories that contain images included in the documentation."},
	{Key: "INPUT_FILTER", Kind: KindString, Default: "", Description: "# Program invoked to filter each input file."},
	{Key: "FILTER_PATTERNS", Kind: KindString, Default: "", Description: "# Per-pattern input filters in the form pattern=filter."},
	{Key: "FILTER_SOURCE_FILES", Kind: KindBool, Default: "NO", Description: "# Also apply the input filter to files used for source browsing."},
	{Key: "SOURCE_BROWSER", Kind: KindBool, Default: "NO", Description: "# Generate a list of source files with cross-referenced sources."},
	{Key: "INLINE_SOURCES", Kind: KindBool, Default: "NO", Description: "# Include the body of functions, classes and enums in the documentation."},
	{Key: "STRIP_CODE_COMMENTS", Kind: KindBool, Default: "YES", Description: "# Hide special comment blocks in generated source code fragments."},
	{Key: "REFERENCED_BY_RELATION", Kind: KindBool, Default: "NO", Description: "# List all documented functions referencing each documented function."},
	{Key: "REFERENCES_RELATION", Kind: KindBool, Default: "NO", Description: "# List all documented entities called or used by each documented function."},
	{Key: "REFERENCES_LINK_SOURCE", Kind: KindBool, Default: "YES", Description: "# Link references to source code instead of documentation."},
	{Key: "USE_HTAGS", Kind: KindBool, Default: "NO", Description: "# Point source references to the HTML generated by htags."},
	{Key: "VERBATIM_HEADERS", Kind: KindBool, Default: "YES", Description: "# Generate a verbatim copy of the header file for each class with an include."},
	{Key: "ALPHABETICAL_INDEX", Kind: KindBool, Default: "NO", Description: "# Generate an alphabetical index of all compounds."},
	{Key: "COLS_IN_ALPHA_INDEX", Kind: KindInt, Default: "5", Description: "# Number of columns in the alphabetical index."},
	{Key: "IGNORE_PREFIX", Kind: KindString, Default: "", Description: "# Prefixes ignored while generating the alphabetical index."},
	{Key: "GENERATE_HTML", Kind: KindBool, Default: "YES", Description: "# Generate HTML output."},
	{Key: "HTML_OUTPUT", Kind: KindString, Default: "html", Description: "# Directory for HTML output, relative to the output directory."},
	{Key: "HTML_FILE_EXTENSION", Kind: KindString, Default: ".html", Description: "# File extension for generated HTML pages."},
	{Key: "HTML_HEADER", Kind: KindString, Default: "", Description: "# Custom HTML header file for each generated page."},
	{Key: "HTML_FOOTER", Kind: KindString, Default: "", Description: "# Custom HTML footer file for each generated page."},
	{Key: "HTML_STYLESHEET", Kind: KindString, Default: "", Description: "# Custom cascading style sheet used by each HTML page."},
	{Key: "HTML_ALIGN_MEMBERS", Kind: KindBool, Default: "YES", Description: "# Align members in tables in the HTML output."},
	{Key: "HTML_DYNAMIC_SECTIONS", Kind: KindBool, Default: "NO", Description: "# Make HTML sections collapsible."},
	{Key: "GENERATE_DOCSET", Kind: KindBool, Default: "NO", Description: "# Generate files for the Xcode documentation set."},
	{Key: "DOCSET_FEEDNAME", Kind: KindQuotedString, Default: "Doxygen generated docs", Description: "# Name of the documentation feed for the docset."},
	{Key: "DOCSET_BUNDLE_ID", Kind: KindString, Default: "org.doxygen.Project", Description: "# Unique bundle identifier of the docset."},
	{Key: "GENERATE_HTMLHELP", Kind: KindBool, Default: "NO", Description: "# Generate files for the HTML Help Workshop."},
	{Key: "CHM_FILE", Kind: KindString, Default: "", Description: "# Name of the resulting compressed HTML help file."},
	{Key: "HHC_LOCATION", Kind: KindString, Default: "", Description: "# Location of the HTML help compiler."},
	{Key: "GENERATE_CHI", Kind: KindBool, Default: "NO", Description: "# Generate a separate .chi index file."},
	{Key: "CHM_INDEX_ENCODING", Kind: KindString, Default: "", Description: "# Encoding of the HTML help index."},
	{Key: "BINARY_TOC", Kind: KindBool, Default: "NO", Description: "# Generate a binary table of contents."},
	{Key: "TOC_EXPAND", Kind: KindBool, Default: "NO", Description: "# Add extra items for group members to the table of contents."},
	{Key: "GENERATE_QHP", Kind: KindBool, Default: "NO", Description: "# Generate a Qt Compressed Help file."},
	{Key: "QCH_FILE", Kind: KindString, Default: "", Description: "# Name of the resulting Qt Compressed Help file."},
	{Key: "QHP_NAMESPACE", Kind: KindString, Default: "org.doxygen.Project", Description: "# Namespace of the Qt Help Project output."},
	{Key: "QHP_VIRTUAL_FOLDER", Kind: KindString, Default: "doc", Description: "# Virtual folder of the Qt Help Project output."},
	{Key: "QHG_LOCATION", Kind: KindString, Default: "", Description: "# Location of the Qt help generator."},
	{Key: "DISABLE_INDEX", Kind: KindBool, Default: "NO", Description: "# Disable the condensed index at the top of each HTML page."},
	{Key: "ENUM_VALUES_PER_LINE", Kind: KindInt, Default: "4", Description: "# Number of enum values grouped per line in the HTML output."},
	{Key: "GENERATE_TREEVIEW", Kind: KindString, Default: "NONE", Description: "# Kind of side panel with a tree-like index (NONE, FRAME, HIERARCHIES or ALL)."},
	{Key: "TREEVIEW_WIDTH", Kind: KindInt, Default: "250", Description: "# Initial width in pixels of the tree view frame."},
	{Key: "FORMULA_FONTSIZE", Kind: KindInt, Default: "10", Description: "# Font size in points of LaTeX formulas rendered as images."},
	{Key: "GENERATE_LATEX", Kind: KindBool, Default: "NO", Description: "# Generate LaTeX output."},
	{Key: "LATEX_OUTPUT", Kind: KindString, Default: "latex", Description: "# Directory for LaTeX output, relative to the output directory."},
	{Key: "LATEX_CMD_NAME", Kind: KindString, Default: "latex", Description: "# Name of the LaTeX command to invoke."},
	{Key: "MAKEINDEX_CMD_NAME", Kind: KindString, Default: "makeindex", Description: "# Name of the command that generates the LaTeX index."},
	{Key: "COMPACT_LATEX", Kind: KindBool, Default: "NO", Description: "# Generate more compact LaTeX documents."},
	{Key: "PAPER_TYPE", Kind: KindString, Default: "a4wide", Description: "# Paper type used by the printer."},
	{Key: "EXTRA_PACKAGES", Kind: KindString, Default: "", Description: "# Extra LaTeX package names included in the output."},
	{Key: "LATEX_HEADER", Kind: KindString, Default: "", Description: "# Custom LaTeX header for the generated document."},
	{Key: "PDF_HYPERLINKS", Kind: KindBool, Default: "YES", Description: "# Prepare LaTeX output for conversion to PDF with hyperlinks."},
	{Key: "USE_PDFLATEX", Kind: KindBool, Default: "YES", Description: "# Use pdflatex instead of latex to generate the PDF file."},
	{Key: "LATEX_BATCHMODE", Kind: KindBool, Default: "NO", Description: "# Add the batchmode command to generated LaTeX files."},
	{Key: "LATEX_HIDE_INDICES", Kind: KindBool, Default: "NO", Description: "# Leave out the index chapters from the LaTeX output."},
	{Key: "GENERATE_RTF", Kind: KindBool, Default: "NO", Description: "# Generate RTF output."},
	{Key: "RTF_OUTPUT", Kind: KindString, Default: "rtf", Description: "# Directory for RTF output, relative to the output directory."},
	{Key: "COMPACT_RTF", Kind: KindBool, Default: "NO", Description: "# Generate more compact RTF documents."},
	{Key: "RTF_HYPERLINKS", Kind: KindBool, Default: "NO", Description: "# Generate RTF hyperlink fields."},
	{Key: "RTF_STYLESHEET_FILE", Kind: KindString, Default: "", Description: "# Style sheet file loaded for the RTF output."},
	{Key: "RTF_EXTENSIONS_FILE", Kind: KindString, Default: "", Description: "# Optional variable definitions for the RTF output."},
	{Key: "GENERATE_MAN", Kind: KindBool, Default: "NO", Description: "# Generate man pages."},
	{Key: "MAN_OUTPUT", Kind: KindString, Default: "man", Description: "# Directory for man pages, relative to the output directory."},
	{Key: "MAN_EXTENSION", Kind: KindString, Default: ".3", Description: "# Extension added to generated man pages."},
	{Key: "MAN_LINKS", Kind: KindBool, Default: "NO", Description: "# Generate one additional man file per documented entity in a class or file."},
	{Key: "GENERATE_XML", Kind: KindBool, Default: "NO", Description: "# Generate an XML file that captures the structure of the code."},
	{Key: "XML_OUTPUT", Kind: KindString, Default: "xml", Description: "# Directory for XML output, relative to the output directory."},
	{Key: "XML_SCHEMA", Kind: KindString, Default: "", Description: "# XML schema referenced by the generated XML."},
	{Key: "XML_DTD", Kind: KindString, Default: "", Description: "# XML DTD referenced by the generated XML."},
	{Key: "XML_PROGRAMLISTING", Kind: KindBool, Default: "YES", Description: "# Dump the program listings to the XML output."},
	{Key: "GENERATE_AUTOGEN_DEF", Kind: KindBool, Default: "NO", Description: "# Generate an AutoGen Definitions file."},
	{Key: "GENERATE_PERLMOD", Kind: KindBool, Default: "NO", Description: "# Generate a Perl module file that captures the structure of the code."},
	{Key: "PERLMOD_LATEX", Kind: KindBool, Default: "NO", Description: "# Generate the rules needed to build PDF and DVI output from the Perl module."},
	{Key: "PERLMOD_PRETTY", Kind: KindBool, Default: "YES", Description: "# Make the Perl module output nicely formatted for human readers."},
	{Key: "PERLMOD_MAKEVAR_PREFIX", Kind: KindString, Default: "", Description: "# Prefix for make variable names in the generated doxyrules.make."},
	{Key: "ENABLE_PREPROCESSING", Kind: KindBool, Default: "YES", Description: "# Evaluate all C preprocessor directives found in the sources."},
	{Key: "MACRO_EXPANSION", Kind: KindBool, Default: "NO", Description: "# Expand all macro names in the source code."},
	{Key: "EXPAND_ONLY_PREDEF", Kind: KindBool, Default: "NO", Description: "# Restrict macro expansion to PREDEFINED and EXPAND_AS_DEFINED."},
	{Key: "SEARCH_INCLUDES", Kind: KindBool, Default: "YES", Description: "# Search INCLUDE_PATH for included files."},
	{Key: "INCLUDE_PATH", Kind: KindString, Default: "", Description: "# Directories searched for include files."},
	{Key: "INCLUDE_FILE_PATTERNS", Kind: KindString, Default: "", Description: "# Wildcard patterns used to filter header files in include directories."},
	{Key: "PREDEFINED", Kind: KindString, Default: "", Description: "# Macro names defined before the preprocessor runs."},
	{Key: "EXPAND_AS_DEFINED", Kind: KindString, Default: "", Description: "# Macro names expanded using their definitions from the sources."},
	{Key: "SKIP_FUNCTION_MACROS", Kind: KindBool, Default: "YES", Description: "# Remove all-uppercase function-like macros alone on a line."},
	{Key: "TAGFILES", Kind: KindString, Default: "", Description: "# Tag files used to link to external documentation."},
	{Key: "GENERATE_TAGFILE", Kind: KindString, Default: "", Description: "# Name of the tag file generated for this project."},
	{Key: "ALLEXTERNALS", Kind: KindBool, Default: "NO", Description: "# List all external classes in the class index."},
	{Key: "EXTERNAL_GROUPS", Kind: KindBool, Default: "YES", Description: "# List all external groups in the modules index."},
	{Key: "PERL_PATH", Kind: KindString, Default: "/usr/bin/perl", Description: "# Absolute path to the Perl interpreter."},
	{Key: "CLASS_DIAGRAMS", Kind: KindBool, Default: "YES", Description: "# Generate inheritance diagrams for classes with base or super classes."},
	{Key: "MSCGEN_PATH", Kind: KindString, Default: "", Description: "# Directory containing the mscgen tool."},
	{Key: "HIDE_UNDOC_RELATIONS", Kind: KindBool, Default: "YES", Description: "# Hide inheritance and usage relations to undocumented classes."},
	{Key: "HAVE_DOT", Kind: KindBool, Default: "NO", Description: "# Use the dot tool from Graphviz to generate graphs."},
	{Key: "DOT_FONTNAME", Kind: KindString, Default: "FreeSans", Description: "# Font used by dot for generated graphs."},
	{Key: "DOT_FONTSIZE", Kind: KindInt, Default: "10", Description: "# Font size in points used by dot for generated graphs."},
	{Key: "DOT_FONTPATH", Kind: KindString, Default: "", Description: "# Directory where dot looks for fonts."},
	{Key: "CLASS_GRAPH", Kind: KindBool, Default: "YES", Description: "# Generate a graph of the direct and indirect inheritance of each class."},
	{Key: "COLLABORATION_GRAPH", Kind: KindBool, Default: "YES", Description: "# Generate a graph of the implementation dependencies of each class."},
	{Key: "GROUP_GRAPHS", Kind: KindBool, Default: "YES", Description: "# Generate a graph of the dependencies of groups."},
	{Key: "UML_LOOK", Kind: KindBool, Default: "NO", Description: "# Draw inheritance and collaboration diagrams in UML style."},
	{Key: "TEMPLATE_RELATIONS", Kind: KindBool, Default: "NO", Description: "# Show the relations between templates and their instances."},
	{Key: "INCLUDE_GRAPH", Kind: KindBool, Default: "YES", Description: "# Generate a graph of the files each documented file includes."},
	{Key: "INCLUDED_BY_GRAPH", Kind: KindBool, Default: "YES", Description: "# Generate a graph of the files that include each documented file."},
	{Key: "CALL_GRAPH", Kind: KindBool, Default: "NO", Description: "# Generate a call dependency graph for every function."},
	{Key: "CALLER_GRAPH", Kind: KindBool, Default: "NO", Description: "# Generate a caller dependency graph for every function."},
	{Key: "GRAPHICAL_HIERARCHY", Kind: KindBool, Default: "YES", Description: "# Generate a graphical hierarchy of all classes."},
	{Key: "DIRECTORY_GRAPH", Kind: KindBool, Default: "YES", Description: "# Generate a graph of the dependencies of each directory."},
	{Key: "DOT_IMAGE_FORMAT", Kind: KindString, Default: "png", Description: "# Image format of the images generated by dot."},
	{Key: "DOT_PATH", Kind: KindString, Default: "", Description: "# Directory containing the dot tool."},
	{Key: "DOTFILE_DIRS", Kind: KindString, Default: "", Description: "# Directories containing dot files included in the documentation."},
	{Key: "DOT_GRAPH_MAX_NODES", Kind: KindInt, Default: "50", Description: "# Maximum number of nodes shown in a graph."},
	{Key: "MAX_DOT_GRAPH_DEPTH", Kind: KindInt, Default: "0", Description: "# Maximum depth of the graphs generated by dot (0 means no limit)."},
	{Key: "DOT_TRANSPARENT", Kind: KindBool, Default: "NO", Description: "# Generate images with a transparent background."},
	{Key: "DOT_MULTI_TARGETS", Kind: KindBool, Default: "NO", Description: "# Let dot generate multiple output files in one run."},
	{Key: "GENERATE_LEGEND", Kind: KindBool, Default: "YES", Description: "# Generate a legend page explaining the meaning of the graph elements."},
	{Key: "DOT_CLEANUP", Kind: KindBool, Default: "YES", Description: "# Remove the intermediate dot files used to generate graphs."},
	{Key: "SEARCHENGINE", Kind: KindBool, Default: "NO", Description: "# Enable the search engine."},
}
