// Package pca reduces the dimension of a data matrix with classical
// principal component analysis: column centering followed by one thin SVD,
// truncated to the leading k components.
//
// It is the final step of the usual pipeline: denoise with rpca, keep the
// low-rank part, then project it onto a few components for plotting or for
// rotational analyses such as jPCA.
//
//	scores, err := pca.Reduce(B, 2)
//
// Use a PCA value directly to keep the fitted means and directions and to
// project further observations with Transform.
package pca
